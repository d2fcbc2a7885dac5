// Command report builds the PDF analysis report for a snapshot.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"grade-analytics/app/report"
	"grade-analytics/app/repository"
	"grade-analytics/config"
)

func main() {
	config.LoadEnv()
	in := flag.String("in", config.DatasetPath(), "snapshot path (.csv or .xlsx)")
	out := flag.String("out", filepath.Join(config.ExportDir(), "grade_report.pdf"), "output PDF path")
	flag.Parse()

	snapshot, err := repository.NewSnapshotRepository().Load(*in)
	if err != nil {
		log.Fatal(err)
	}
	if len(snapshot.Records) == 0 {
		log.Fatal("snapshot contains no records")
	}

	d, err := report.Collect(snapshot.Records, snapshot.Records[0].AcademicYear, time.Now().UTC())
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Build(d, f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
