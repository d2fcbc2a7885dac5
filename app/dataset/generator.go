// Package dataset produces the synthetic grade snapshot every other stage
// consumes. Generation is seeded, so the same config always yields the same
// records.
package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"grade-analytics/app/models"
	"grade-analytics/utils"
)

// Course is one graded teaching unit of the academic structure.
type Course struct {
	Code  string
	Title string
}

// Department describes the programs, levels and per-level courses a
// generated student can be assigned to.
type Department struct {
	Name     string
	Programs []string
	Levels   []string
	Courses  map[string][]Course // by level
}

// Faculty is the fixed academic structure used by the generator.
var Faculty = []Department{
	{
		Name:     "Civil Engineering",
		Programs: []string{"Building Construction", "Public Works"},
		Levels:   []string{"L2", "L3", "M1"},
		Courses: map[string][]Course{
			"L2": {{"CE102", "Electricity"}, {"CE103", "Materials Science"}},
			"L3": {{"CE201", "Strength of Materials"}, {"CE202", "Soil Mechanics"}},
			"M1": {{"CE301", "Mathematics"}, {"CE302", "Structural Design"}},
		},
	},
	{
		Name:     "Computer Science",
		Programs: []string{"Software Engineering", "Artificial Intelligence"},
		Levels:   []string{"L3", "M1"},
		Courses: map[string][]Course{
			"L3": {{"CS302", "Databases"}, {"CS303", "Operating Systems"}},
			"M1": {{"CS401", "Machine Learning"}, {"CS402", "Distributed Systems"}},
		},
	},
	{
		Name:     "Networks & Telecoms",
		Programs: []string{"Telecommunications"},
		Levels:   []string{"L1", "L2"},
		Courses: map[string][]Course{
			"L1": {{"NT101", "Network Fundamentals"}, {"NT102", "Signal Theory"}},
			"L2": {{"NT201", "Data Transmission"}, {"NT202", "Routing & Switching"}},
		},
	},
}

var lastNames = []string{
	"SCHMITT", "DELANNOY", "DIJOUX", "WAGNER", "MARTIN",
	"DUPONT", "BERNARD", "MOREAU", "ROBERT", "PETIT",
}

var firstNames = []string{
	"Danielle", "Agathe", "Madeleine", "Stephane", "Lucas",
	"Emma", "Sophie", "Thomas", "Julie", "Antoine",
}

var teachers = []string{"A. KOUADIO", "J. DADEOU", "M. TRAORE"}

// Config controls generation. The zero value is not valid; use Default and
// override what the caller needs.
type Config struct {
	Students     int
	Seed         int64
	GradeMean    float64
	GradeStdDev  float64
	AcademicYear string
}

// Default mirrors the parameters the project has always simulated with.
func Default() Config {
	return Config{
		Students:     1200,
		Seed:         42,
		GradeMean:    12,
		GradeStdDev:  3,
		AcademicYear: "2025-2026",
	}
}

// Validate fails fast on configuration errors; generation has no other
// failure modes.
func (c Config) Validate() error {
	if c.Students <= 0 {
		return fmt.Errorf("config: student count must be positive, got %d", c.Students)
	}
	if c.GradeStdDev < 0 {
		return fmt.Errorf("config: grade std-dev must be non-negative, got %g", c.GradeStdDev)
	}
	if c.GradeMean < models.GradeMin || c.GradeMean > models.GradeMax {
		return fmt.Errorf("config: grade mean %g outside [%g, %g]",
			c.GradeMean, models.GradeMin, models.GradeMax)
	}
	if _, err := utils.AcademicYearStart(c.AcademicYear); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Generate draws cfg.Students synthetic students and returns one record per
// course of the student's level, grades from a clipped normal distribution.
func Generate(cfg Config) ([]models.Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	refDate, _ := utils.AcademicYearStart(cfg.AcademicYear)

	var records []models.Record
	for i := 0; i < cfg.Students; i++ {
		dept := Faculty[rng.Intn(len(Faculty))]
		level := dept.Levels[rng.Intn(len(dept.Levels))]
		birth := randomBirthDate(rng)

		student := models.Record{
			StudentID:    fmt.Sprintf("EPL%04d", i+1),
			LastName:     lastNames[rng.Intn(len(lastNames))],
			FirstName:    firstNames[rng.Intn(len(firstNames))],
			Gender:       pick(rng, "M", "F"),
			BirthDate:    birth,
			Age:          utils.AgeAt(birth, refDate),
			Department:   dept.Name,
			Program:      dept.Programs[rng.Intn(len(dept.Programs))],
			Level:        level,
			AcademicYear: cfg.AcademicYear,
		}

		for _, course := range dept.Courses[level] {
			r := student
			r.CourseCode = course.Code
			r.CourseTitle = course.Title
			r.Teacher = teachers[rng.Intn(len(teachers))]
			r.Grade = clippedGrade(rng, cfg.GradeMean, cfg.GradeStdDev)
			records = append(records, r)
		}
	}
	return records, nil
}

func clippedGrade(rng *rand.Rand, mean, stddev float64) float64 {
	g := rng.NormFloat64()*stddev + mean
	if g < models.GradeMin {
		g = models.GradeMin
	}
	if g > models.GradeMax {
		g = models.GradeMax
	}
	return utils.Round2(g)
}

func randomBirthDate(rng *rand.Rand) time.Time {
	start := time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2007, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days+1))
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}
