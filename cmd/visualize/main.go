// Command visualize renders the snapshot's chart set as PNG files.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"grade-analytics/app/charts"
	"grade-analytics/app/repository"
	"grade-analytics/app/stats"
	"grade-analytics/config"
)

func main() {
	config.LoadEnv()
	in := flag.String("in", config.DatasetPath(), "snapshot path (.csv or .xlsx)")
	exportDir := flag.String("export", config.ExportDir(), "directory for PNG exports")
	bins := flag.Int("bins", 20, "histogram bin count")
	flag.Parse()

	snapshot, err := repository.NewSnapshotRepository().Load(*in)
	if err != nil {
		log.Fatal(err)
	}
	records := snapshot.Records

	histBins, err := stats.Histogram(records, *bins)
	if err != nil {
		log.Fatal(err)
	}

	renderer := charts.NewRenderer()
	files := []struct {
		name   string
		render func(w io.Writer) error
	}{
		{"histogram.png", func(w io.Writer) error {
			return renderer.GradeHistogram(histBins, w)
		}},
		{"mean_by_department.png", func(w io.Writer) error {
			return renderer.MeanBar("Mean grade by department", stats.ByDepartment(records), w)
		}},
		{"mean_by_course.png", func(w io.Writer) error {
			return renderer.MeanBar("Mean grade by course", stats.ByCourse(records), w)
		}},
		{"mean_by_age_bracket.png", func(w io.Writer) error {
			return renderer.MeanBar("Mean grade by age bracket", stats.ByAgeBracket(records), w)
		}},
		{"pass_rate_by_gender.png", func(w io.Writer) error {
			return renderer.PassRateBar("Pass rate by gender", stats.ByGender(records), w)
		}},
	}

	if err := os.MkdirAll(*exportDir, 0755); err != nil {
		log.Fatal(err)
	}
	for _, file := range files {
		path := filepath.Join(*exportDir, file.name)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := file.render(f); err != nil {
			f.Close()
			log.Fatalf("render %s: %v", file.name, err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
}
