package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grade-analytics/app/models"
	"grade-analytics/app/stats"
)

func rec(studentID, course string, grade float64) models.Record {
	return models.Record{
		StudentID:  studentID,
		Department: "Computer Science",
		CourseCode: course,
		Grade:      grade,
	}
}

// Two courses, three students each: A gets 12, 9, 14 and B gets 15, 18, 11.
func fixture() []models.Record {
	return []models.Record{
		rec("EPL0001", "A", 12),
		rec("EPL0002", "B", 15),
		rec("EPL0001", "A", 9),
		rec("EPL0002", "B", 18),
		rec("EPL0003", "A", 14),
		rec("EPL0003", "B", 11),
	}
}

func TestOverall(t *testing.T) {
	t.Run("Success: full fixture", func(t *testing.T) {
		o, err := stats.Overall(fixture())

		assert.NoError(t, err)
		assert.Equal(t, 6, o.Count)
		assert.InDelta(t, 13.17, o.Mean, 0.01)
		assert.InDelta(t, 9, o.Min, 0.001)
		assert.InDelta(t, 18, o.Max, 0.001)
		// 5 of 6 grades are at or above the pass mark.
		assert.InDelta(t, 83.33, o.PassRate, 0.01)
	})

	t.Run("Success: single grade has zero spread", func(t *testing.T) {
		o, err := stats.Overall([]models.Record{rec("EPL0001", "A", 12)})

		assert.NoError(t, err)
		assert.Equal(t, 0.0, o.StdDev)
		assert.Equal(t, 12.0, o.Median)
	})

	t.Run("Error: no records", func(t *testing.T) {
		_, err := stats.Overall(nil)

		assert.ErrorIs(t, err, stats.ErrNoRecords)
	})
}

func TestByCourse(t *testing.T) {
	groups := stats.ByCourse(fixture())

	assert.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Key)
	assert.Equal(t, "B", groups[1].Key)
	assert.InDelta(t, 11.67, groups[0].Mean, 0.01)
	assert.InDelta(t, 14.67, groups[1].Mean, 0.01)
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, 3, groups[1].Count)
}

func TestByAgeBracket(t *testing.T) {
	records := []models.Record{
		{StudentID: "EPL0001", Age: 19, Grade: 10},
		{StudentID: "EPL0002", Age: 22, Grade: 12},
		{StudentID: "EPL0003", Age: 22, Grade: 14},
		{StudentID: "EPL0004", Age: 29, Grade: 8},
	}

	groups := stats.ByAgeBracket(records)

	assert.Len(t, groups, 3)
	assert.Equal(t, "18-20", groups[0].Key)
	assert.Equal(t, "21-23", groups[1].Key)
	assert.Equal(t, "27+", groups[2].Key)
	assert.InDelta(t, 13, groups[1].Mean, 0.001)
}

func TestHistogram(t *testing.T) {
	t.Run("Success: counts partition the records", func(t *testing.T) {
		records := fixture()
		records = append(records, rec("EPL0004", "A", 20)) // scale maximum

		bins, err := stats.Histogram(records, 4)

		assert.NoError(t, err)
		assert.Len(t, bins, 4)
		total := 0
		for _, b := range bins {
			total += b.Count
		}
		assert.Equal(t, len(records), total)
		// The maximum grade falls into the last bin, not past it.
		assert.Equal(t, "15-20", bins[3].Label)
		assert.GreaterOrEqual(t, bins[3].Count, 1)
	})

	t.Run("Error: non-positive bin count", func(t *testing.T) {
		_, err := stats.Histogram(fixture(), 0)

		assert.Error(t, err)
	})

	t.Run("Error: no records", func(t *testing.T) {
		_, err := stats.Histogram(nil, 10)

		assert.ErrorIs(t, err, stats.ErrNoRecords)
	})
}

func TestGroupsSortedByKey(t *testing.T) {
	records := []models.Record{
		{StudentID: "s1", Teacher: "M. TRAORE", Grade: 10},
		{StudentID: "s2", Teacher: "A. KOUADIO", Grade: 12},
		{StudentID: "s3", Teacher: "J. DADEOU", Grade: 14},
	}

	groups := stats.ByTeacher(records)

	assert.Equal(t, "A. KOUADIO", groups[0].Key)
	assert.Equal(t, "J. DADEOU", groups[1].Key)
	assert.Equal(t, "M. TRAORE", groups[2].Key)
}
