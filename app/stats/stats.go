// Package stats is the statistics engine: pure descriptive aggregations
// over a record slice. Every function recomputes from scratch; nothing is
// cached or mutated.
package stats

import (
	"errors"
	"fmt"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"grade-analytics/app/models"
)

// ErrNoRecords is returned when an aggregate is requested over zero
// records. Callers report absence of data instead of zero-valued stats.
var ErrNoRecords = errors.New("no records to aggregate")

// Overall computes the descriptive summary of the full record set.
func Overall(records []models.Record) (models.OverallStats, error) {
	grades := collectGrades(records)
	if len(grades) == 0 {
		return models.OverallStats{}, ErrNoRecords
	}

	mean, _ := mstats.Mean(grades)
	median, _ := mstats.Median(grades)
	stddev := sampleStdDev(grades)
	min, _ := mstats.Min(grades)
	max, _ := mstats.Max(grades)
	quartiles, _ := mstats.Quartile(grades)

	return models.OverallStats{
		Count:    len(grades),
		Mean:     mean,
		Median:   median,
		StdDev:   stddev,
		Min:      min,
		Max:      max,
		Q1:       quartiles.Q1,
		Q3:       quartiles.Q3,
		PassRate: passRate(grades),
	}, nil
}

// ByCourse aggregates per course code. Courses without grades are absent.
func ByCourse(records []models.Record) []models.GroupStats {
	return groupBy(records, func(r models.Record) string { return r.CourseCode })
}

// ByDepartment aggregates per department.
func ByDepartment(records []models.Record) []models.GroupStats {
	return groupBy(records, func(r models.Record) string { return r.Department })
}

// ByTeacher aggregates per teacher.
func ByTeacher(records []models.Record) []models.GroupStats {
	return groupBy(records, func(r models.Record) string { return r.Teacher })
}

// ByGender aggregates per gender.
func ByGender(records []models.Record) []models.GroupStats {
	return groupBy(records, func(r models.Record) string { return r.Gender })
}

// ByAgeBracket aggregates per age bracket.
func ByAgeBracket(records []models.Record) []models.GroupStats {
	return groupBy(records, func(r models.Record) string { return models.AgeBracket(r.Age) })
}

// ByProgramLevel aggregates per program and level combination.
func ByProgramLevel(records []models.Record) []models.GroupStats {
	return groupBy(records, func(r models.Record) string {
		return r.Program + " / " + r.Level
	})
}

// Histogram bins the grade distribution into binCount equal-width buckets
// over the grade scale. The last bucket includes the scale maximum.
func Histogram(records []models.Record, binCount int) ([]models.Bin, error) {
	if binCount <= 0 {
		return nil, fmt.Errorf("histogram: bin count must be positive, got %d", binCount)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	width := (models.GradeMax - models.GradeMin) / float64(binCount)
	bins := make([]models.Bin, binCount)
	for i := range bins {
		low := models.GradeMin + float64(i)*width
		high := low + width
		bins[i] = models.Bin{
			Label: fmt.Sprintf("%g-%g", low, high),
			Low:   low,
			High:  high,
		}
	}
	for _, r := range records {
		i := int((r.Grade - models.GradeMin) / width)
		if i >= binCount {
			i = binCount - 1 // grade == GradeMax
		}
		bins[i].Count++
	}
	return bins, nil
}

func groupBy(records []models.Record, key func(models.Record) string) []models.GroupStats {
	grouped := make(map[string][]float64)
	for _, r := range records {
		k := key(r)
		grouped[k] = append(grouped[k], r.Grade)
	}

	out := make([]models.GroupStats, 0, len(grouped))
	for k, grades := range grouped {
		mean, _ := mstats.Mean(grades)
		median, _ := mstats.Median(grades)
		min, _ := mstats.Min(grades)
		max, _ := mstats.Max(grades)
		out = append(out, models.GroupStats{
			Key:      k,
			Count:    len(grades),
			Mean:     mean,
			Median:   median,
			StdDev:   sampleStdDev(grades),
			Min:      min,
			Max:      max,
			PassRate: passRate(grades),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// sampleStdDev is the sample (n-1) standard deviation. A single grade has
// no spread to estimate, reported as 0.
func sampleStdDev(grades []float64) float64 {
	if len(grades) < 2 {
		return 0
	}
	sd, _ := mstats.StandardDeviationSample(grades)
	return sd
}

// passRate is the percentage of grades at or above the pass mark.
func passRate(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	passed := 0
	for _, g := range grades {
		if g >= models.PassMark {
			passed++
		}
	}
	return float64(passed) / float64(len(grades)) * 100
}

func collectGrades(records []models.Record) []float64 {
	grades := make([]float64, len(records))
	for i, r := range records {
		grades[i] = r.Grade
	}
	return grades
}
