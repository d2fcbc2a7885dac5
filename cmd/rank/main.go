// Command rank prints the top of the overall ranking and exports the full
// ranking tables as CSV files.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"grade-analytics/app/models"
	"grade-analytics/app/ranking"
	"grade-analytics/app/repository"
	"grade-analytics/config"
	"grade-analytics/utils"
)

func main() {
	config.LoadEnv()
	in := flag.String("in", config.DatasetPath(), "snapshot path (.csv or .xlsx)")
	exportDir := flag.String("export", config.ExportDir(), "directory for CSV exports")
	top := flag.Int("top", 10, "how many entries to print")
	flag.Parse()

	snapshot, err := repository.NewSnapshotRepository().Load(*in)
	if err != nil {
		log.Fatal(err)
	}
	records := snapshot.Records

	overall := ranking.Overall(records, ranking.Options{})
	fmt.Printf("Overall ranking (top %d of %d students)\n", *top, len(overall))
	printEntries(overall, *top)

	if err := exportEntries(filepath.Join(*exportDir, "ranking_overall.csv"), overall); err != nil {
		log.Fatal(err)
	}
	if err := exportGrouped(filepath.Join(*exportDir, "ranking_departments.csv"),
		ranking.ByDepartment(records, ranking.Options{})); err != nil {
		log.Fatal(err)
	}
	if err := exportGrouped(filepath.Join(*exportDir, "ranking_program_levels.csv"),
		ranking.ByProgramLevel(records, ranking.Options{})); err != nil {
		log.Fatal(err)
	}
	if err := exportGrouped(filepath.Join(*exportDir, "ranking_courses.csv"),
		ranking.ByCourse(records)); err != nil {
		log.Fatal(err)
	}
	log.Printf("exports written to %s", *exportDir)
}

func printEntries(entries []models.RankingEntry, top int) {
	if len(entries) > top {
		entries = entries[:top]
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tStudent\tName\tDepartment\tLevel\tScore")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\t%s\n",
			e.Rank, e.StudentID, e.LastName, e.FirstName,
			e.Department, e.Level, utils.FormatGrade(e.Score))
	}
	w.Flush()
	fmt.Println()
}

var rankingHeader = []string{
	"rank", "student_id", "last_name", "first_name",
	"department", "program", "level", "score",
}

func entryRow(e models.RankingEntry) []string {
	return []string{
		fmt.Sprintf("%d", e.Rank),
		e.StudentID, e.LastName, e.FirstName,
		e.Department, e.Program, e.Level,
		utils.FormatGrade(e.Score),
	}
}

func exportEntries(path string, entries []models.RankingEntry) error {
	return writeCSV(path, rankingHeader, func(cw *csv.Writer) error {
		for _, e := range entries {
			if err := cw.Write(entryRow(e)); err != nil {
				return err
			}
		}
		return nil
	})
}

func exportGrouped(path string, groups []models.GroupRanking) error {
	header := append([]string{"group"}, rankingHeader...)
	return writeCSV(path, header, func(cw *csv.Writer) error {
		for _, g := range groups {
			for _, e := range g.Entries {
				if err := cw.Write(append([]string{g.Key}, entryRow(e)...)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, body func(*csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := body(cw); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
