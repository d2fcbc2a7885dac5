// Command analyze prints the aggregate tables for a snapshot and exports
// them as CSV files.
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
	"grade-analytics/app/repository"
	"grade-analytics/app/stats"
	"grade-analytics/config"
	"grade-analytics/utils"
)

func main() {
	config.LoadEnv()
	in := flag.String("in", config.DatasetPath(), "snapshot path (.csv or .xlsx)")
	exportDir := flag.String("export", config.ExportDir(), "directory for CSV exports")
	flag.Parse()

	snapshot, err := repository.NewSnapshotRepository().Load(*in)
	if err != nil {
		log.Fatal(err)
	}
	records := snapshot.Records

	overall, err := stats.Overall(records)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Snapshot %s: %d records, %d students\n\n",
		*in, len(records), len(models.CollectStudents(records)))
	printOverall(overall)

	groups := []struct {
		title string
		file  string
		data  []models.GroupStats
	}{
		{"By department", "stats_departments.csv", stats.ByDepartment(records)},
		{"By course", "stats_courses.csv", stats.ByCourse(records)},
		{"By teacher", "stats_teachers.csv", stats.ByTeacher(records)},
		{"By program / level", "stats_program_levels.csv", stats.ByProgramLevel(records)},
		{"By gender", "stats_gender.csv", stats.ByGender(records)},
		{"By age bracket", "stats_age_brackets.csv", stats.ByAgeBracket(records)},
	}
	for _, g := range groups {
		printGroups(g.title, g.data)
		if err := exportGroups(filepath.Join(*exportDir, g.file), g.data); err != nil {
			log.Fatalf("export %s: %v", g.file, err)
		}
	}
	log.Printf("exports written to %s", *exportDir)
}

func printOverall(o models.OverallStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Indicator\tValue")
	fmt.Fprintf(w, "Count\t%d\n", o.Count)
	fmt.Fprintf(w, "Mean\t%s\n", utils.FormatGrade(o.Mean))
	fmt.Fprintf(w, "Median\t%s\n", utils.FormatGrade(o.Median))
	fmt.Fprintf(w, "Std dev\t%s\n", utils.FormatGrade(o.StdDev))
	fmt.Fprintf(w, "Min\t%s\n", utils.FormatGrade(o.Min))
	fmt.Fprintf(w, "Max\t%s\n", utils.FormatGrade(o.Max))
	fmt.Fprintf(w, "Q1\t%s\n", utils.FormatGrade(o.Q1))
	fmt.Fprintf(w, "Q3\t%s\n", utils.FormatGrade(o.Q3))
	fmt.Fprintf(w, "Pass rate %%\t%s\n", utils.FormatGrade(o.PassRate))
	w.Flush()
	fmt.Println()
}

func printGroups(title string, groups []models.GroupStats) {
	fmt.Println(title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Group\tCount\tMean\tMedian\tStd dev\tPass %")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			g.Key, g.Count,
			utils.FormatGrade(g.Mean), utils.FormatGrade(g.Median),
			utils.FormatGrade(g.StdDev), utils.FormatGrade(g.PassRate))
	}
	w.Flush()
	fmt.Println()
}

func exportGroups(path string, groups []models.GroupStats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"group", "count", "mean", "median", "std_dev", "min", "max", "pass_rate"}); err != nil {
		return err
	}
	for _, g := range groups {
		row := []string{
			g.Key,
			fmt.Sprintf("%d", g.Count),
			utils.FormatGrade(g.Mean),
			utils.FormatGrade(g.Median),
			utils.FormatGrade(g.StdDev),
			utils.FormatGrade(g.Min),
			utils.FormatGrade(g.Max),
			utils.FormatGrade(g.PassRate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
