package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grade-analytics/app/dataset"
	"grade-analytics/app/models"
)

func TestValidate(t *testing.T) {
	t.Run("Success: default config", func(t *testing.T) {
		assert.NoError(t, dataset.Default().Validate())
	})

	t.Run("Error: non-positive student count", func(t *testing.T) {
		cfg := dataset.Default()
		cfg.Students = 0

		assert.Error(t, cfg.Validate())
	})

	t.Run("Error: negative std-dev", func(t *testing.T) {
		cfg := dataset.Default()
		cfg.GradeStdDev = -1

		assert.Error(t, cfg.Validate())
	})

	t.Run("Error: mean outside grade scale", func(t *testing.T) {
		cfg := dataset.Default()
		cfg.GradeMean = 25

		assert.Error(t, cfg.Validate())
	})

	t.Run("Error: malformed academic year", func(t *testing.T) {
		cfg := dataset.Default()
		cfg.AcademicYear = "not-a-year"

		assert.Error(t, cfg.Validate())
	})
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := dataset.Default()
	cfg.Students = 50

	first, err := dataset.Generate(cfg)
	assert.NoError(t, err)
	second, err := dataset.Generate(cfg)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateShape(t *testing.T) {
	cfg := dataset.Default()
	cfg.Students = 100

	records, err := dataset.Generate(cfg)
	assert.NoError(t, err)

	students := models.CollectStudents(records)
	assert.Len(t, students, cfg.Students)

	for _, r := range records {
		assert.GreaterOrEqual(t, r.Grade, models.GradeMin)
		assert.LessOrEqual(t, r.Grade, models.GradeMax)
		assert.Equal(t, cfg.AcademicYear, r.AcademicYear)
		assert.NotEmpty(t, r.CourseCode)
		assert.NotEmpty(t, r.Teacher)
		assert.Contains(t, []string{"M", "F"}, r.Gender)
		assert.False(t, r.BirthDate.IsZero())
		assert.Positive(t, r.Age)
	}

	// Every student carries at least one course of their level.
	for _, s := range students {
		assert.NotEmpty(t, s.Grades)
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	cfg := dataset.Default()
	cfg.Students = 50

	first, err := dataset.Generate(cfg)
	assert.NoError(t, err)

	cfg.Seed = 7
	second, err := dataset.Generate(cfg)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
