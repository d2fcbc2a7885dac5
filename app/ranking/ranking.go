// Package ranking orders students by composite score.
//
// The composite score is the weighted mean of a student's per-course grades;
// weights default to uniform, so without options the score is the plain mean
// of the student's grades. Ordering is score descending with ties broken by
// ascending student id, and rank positions are dense (tied students share a
// rank, the next distinct score gets the following rank). Running the module
// twice on the same input yields the same sequence.
package ranking

import (
	"sort"

	"grade-analytics/app/models"
)

// Options tunes the composite score. Weights maps course codes to relative
// weights; courses absent from a non-empty map contribute nothing, and a
// student with no weighted courses is excluded from the ranking.
type Options struct {
	Weights map[string]float64
}

// Overall ranks the whole cohort.
func Overall(records []models.Record, opts Options) []models.RankingEntry {
	return rank(models.CollectStudents(records), opts)
}

// ByDepartment ranks each department independently, departments in
// ascending name order.
func ByDepartment(records []models.Record, opts Options) []models.GroupRanking {
	return grouped(records, opts, func(s models.StudentRecord) string {
		return s.Department
	})
}

// ByProgramLevel ranks each program/level combination independently.
func ByProgramLevel(records []models.Record, opts Options) []models.GroupRanking {
	return grouped(records, opts, func(s models.StudentRecord) string {
		return s.Program + " / " + s.Level
	})
}

// ByCourse ranks students within each course by their grade in that course.
func ByCourse(records []models.Record) []models.GroupRanking {
	byCourse := make(map[string][]models.Record)
	for _, r := range records {
		byCourse[r.CourseCode] = append(byCourse[r.CourseCode], r)
	}

	out := make([]models.GroupRanking, 0, len(byCourse))
	for code, course := range byCourse {
		// Within one course each student has a single grade, so the
		// composite reduces to that grade.
		out = append(out, models.GroupRanking{
			Key:     code,
			Entries: rank(models.CollectStudents(course), Options{}),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func grouped(records []models.Record, opts Options, key func(models.StudentRecord) string) []models.GroupRanking {
	students := models.CollectStudents(records)
	byKey := make(map[string][]models.StudentRecord)
	for _, s := range students {
		byKey[key(s)] = append(byKey[key(s)], s)
	}

	out := make([]models.GroupRanking, 0, len(byKey))
	for k, group := range byKey {
		out = append(out, models.GroupRanking{Key: k, Entries: rank(group, opts)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func rank(students []models.StudentRecord, opts Options) []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(students))
	for _, s := range students {
		score, ok := compositeScore(s, opts.Weights)
		if !ok {
			continue
		}
		entries = append(entries, models.RankingEntry{
			StudentID:  s.StudentID,
			LastName:   s.LastName,
			FirstName:  s.FirstName,
			Department: s.Department,
			Program:    s.Program,
			Level:      s.Level,
			Score:      score,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].StudentID < entries[j].StudentID
	})

	// Dense ranks: tied scores share a position.
	for i := range entries {
		switch {
		case i == 0:
			entries[i].Rank = 1
		case entries[i].Score == entries[i-1].Score:
			entries[i].Rank = entries[i-1].Rank
		default:
			entries[i].Rank = entries[i-1].Rank + 1
		}
	}
	return entries
}

func compositeScore(s models.StudentRecord, weights map[string]float64) (float64, bool) {
	var sum, weightSum float64
	for course, grade := range s.Grades {
		w := 1.0
		if len(weights) > 0 {
			w = weights[course]
		}
		sum += grade * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0, false
	}
	return sum / weightSum, true
}
