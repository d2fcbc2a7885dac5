// Command generate writes a synthetic grade snapshot (CSV plus XLSX mirror).
package main

import (
	"flag"
	"log"
	"strings"

	"grade-analytics/app/dataset"
	"grade-analytics/app/repository"
	"grade-analytics/config"
)

func main() {
	config.LoadEnv()
	def := dataset.Default()

	students := flag.Int("students", def.Students, "number of students to simulate")
	seed := flag.Int64("seed", def.Seed, "random seed; same seed, same snapshot")
	mean := flag.Float64("mean", def.GradeMean, "grade distribution mean")
	stddev := flag.Float64("stddev", def.GradeStdDev, "grade distribution std-dev")
	year := flag.String("year", def.AcademicYear, "academic year, e.g. 2025-2026")
	out := flag.String("out", config.DatasetPath(), "output CSV path")
	flag.Parse()

	cfg := dataset.Config{
		Students:     *students,
		Seed:         *seed,
		GradeMean:    *mean,
		GradeStdDev:  *stddev,
		AcademicYear: *year,
	}
	records, err := dataset.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	repo := repository.NewSnapshotRepository()
	if err := repo.SaveCSV(records, *out); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	xlsxPath := strings.TrimSuffix(*out, ".csv") + ".xlsx"
	if err := repo.SaveXLSX(records, xlsxPath); err != nil {
		log.Fatalf("write xlsx: %v", err)
	}
	log.Printf("wrote %d records for %d students to %s and %s",
		len(records), *students, *out, xlsxPath)
}
