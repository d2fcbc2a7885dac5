package repository_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grade-analytics/app/models"
	"grade-analytics/app/repository"
)

func sampleRecords() []models.Record {
	birth := time.Date(2003, time.May, 14, 0, 0, 0, 0, time.UTC)
	return []models.Record{
		{
			StudentID:    "EPL0001",
			LastName:     "KONE",
			FirstName:    "Awa",
			Gender:       "F",
			BirthDate:    birth,
			Age:          22,
			Department:   "Computer Science",
			Program:      "Software Engineering",
			Level:        "L3",
			AcademicYear: "2025-2026",
			CourseCode:   "CS301",
			CourseTitle:  "Algorithms",
			Teacher:      "A. KOUADIO",
			Grade:        14.25,
		},
		{
			StudentID:    "EPL0002",
			LastName:     "DIALLO",
			FirstName:    "Moussa",
			Gender:       "M",
			BirthDate:    birth.AddDate(-2, 0, 0),
			Age:          24,
			Department:   "Civil Engineering",
			Program:      "Structures",
			Level:        "L3",
			AcademicYear: "2025-2026",
			CourseCode:   "CE301",
			CourseTitle:  "Soil Mechanics",
			Teacher:      "J. DADEOU",
			Grade:        9.5,
		},
	}
}

func TestCSVRoundtrip(t *testing.T) {
	var sb strings.Builder
	records := sampleRecords()

	assert.NoError(t, repository.WriteCSV(records, &sb))

	parsed, err := repository.ReadCSV(strings.NewReader(sb.String()))
	assert.NoError(t, err)
	assert.Equal(t, records, parsed)
}

func TestReadCSVErrors(t *testing.T) {
	t.Run("Error: missing column", func(t *testing.T) {
		csv := "student_id,grade\nEPL0001,12\n"

		_, err := repository.ReadCSV(strings.NewReader(csv))

		assert.ErrorIs(t, err, repository.ErrMissingColumn)
	})

	t.Run("Error: header only", func(t *testing.T) {
		csv := strings.Join(models.Columns, ",") + "\n"

		_, err := repository.ReadCSV(strings.NewReader(csv))

		assert.ErrorIs(t, err, repository.ErrEmptySnapshot)
	})

	t.Run("Error: non-numeric grade", func(t *testing.T) {
		csv := strings.Join(models.Columns, ",") + "\n" +
			"EPL0001,KONE,Awa,F,14/05/2003,CS,SE,L3,2025-2026,CS301,Algorithms,A. KOUADIO,abc\n"

		_, err := repository.ReadCSV(strings.NewReader(csv))

		assert.ErrorContains(t, err, "invalid grade")
	})

	t.Run("Error: grade outside scale", func(t *testing.T) {
		csv := strings.Join(models.Columns, ",") + "\n" +
			"EPL0001,KONE,Awa,F,14/05/2003,CS,SE,L3,2025-2026,CS301,Algorithms,A. KOUADIO,21\n"

		_, err := repository.ReadCSV(strings.NewReader(csv))

		assert.ErrorContains(t, err, "outside")
	})

	t.Run("Error: malformed birth date", func(t *testing.T) {
		csv := strings.Join(models.Columns, ",") + "\n" +
			"EPL0001,KONE,Awa,F,2003-05-14,CS,SE,L3,2025-2026,CS301,Algorithms,A. KOUADIO,12\n"

		_, err := repository.ReadCSV(strings.NewReader(csv))

		assert.ErrorContains(t, err, "invalid birth_date")
	})
}

func TestLoadCSV(t *testing.T) {
	repo := repository.NewSnapshotRepository()
	path := filepath.Join(t.TempDir(), "grades.csv")
	records := sampleRecords()

	assert.NoError(t, repo.SaveCSV(records, path))

	snapshot, err := repo.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, records, snapshot.Records)
	assert.Equal(t, path, snapshot.Source)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", snapshot.ID.String())
}

func TestLoadXLSX(t *testing.T) {
	repo := repository.NewSnapshotRepository()
	path := filepath.Join(t.TempDir(), "grades.xlsx")
	records := sampleRecords()

	assert.NoError(t, repo.SaveXLSX(records, path))

	snapshot, err := repo.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, records, snapshot.Records)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := repository.NewSnapshotRepository().Load("grades.json")

	assert.ErrorContains(t, err, "unsupported snapshot format")
}
