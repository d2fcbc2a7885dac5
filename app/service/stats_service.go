package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"grade-analytics/app/models"
	"grade-analytics/app/stats"
)

// StatsService serves the statistics engine's output over HTTP. Every
// response is recomputed from the immutable snapshot; filters narrow the
// record set before aggregation.
type StatsService struct {
	snapshot *models.Snapshot
}

func NewStatsService(snapshot *models.Snapshot) *StatsService {
	return &StatsService{snapshot: snapshot}
}

// filtered parses the common filter params and applies them, writing the
// error response itself when the filter is invalid or matches nothing. A
// filter matching zero records is reported as absent data, not as empty
// stats.
func (s *StatsService) filtered(c *fiber.Ctx) ([]models.Record, bool) {
	var f models.Filter
	if err := c.QueryParser(&f); err != nil {
		_ = c.Status(400).JSON(fiber.Map{"error": "invalid filter parameters"})
		return nil, false
	}
	records := f.Apply(s.snapshot.Records)
	if len(records) == 0 {
		_ = c.Status(404).JSON(fiber.Map{"error": "no records match the given filters"})
		return nil, false
	}
	return records, true
}

func (s *StatsService) respond(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"snapshotId": s.snapshot.ID,
		"data":       data,
	})
}

// GetOverall godoc
// @Summary      Global descriptive statistics
// @Tags         statistics
// @Produce      json
// @Param        department  query  string  false  "Department filter"
// @Param        program     query  string  false  "Program filter"
// @Param        level       query  string  false  "Level filter"
// @Param        teacher     query  string  false  "Teacher filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stats/overall [get]
func (s *StatsService) GetOverall(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	overall, err := stats.Overall(records)
	if errors.Is(err, stats.ErrNoRecords) {
		return c.Status(404).JSON(fiber.Map{"error": "no records match the given filters"})
	}
	return s.respond(c, overall)
}

// GetByDepartment godoc
// @Summary      Statistics grouped by department
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/departments [get]
func (s *StatsService) GetByDepartment(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return s.respond(c, stats.ByDepartment(records))
}

// GetByCourse godoc
// @Summary      Statistics grouped by course
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/courses [get]
func (s *StatsService) GetByCourse(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return s.respond(c, stats.ByCourse(records))
}

// GetByGender godoc
// @Summary      Statistics grouped by gender
// @Tags         demographics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/gender [get]
func (s *StatsService) GetByGender(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return s.respond(c, stats.ByGender(records))
}

// GetByAgeBracket godoc
// @Summary      Mean grade per age bracket
// @Tags         demographics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/age-brackets [get]
func (s *StatsService) GetByAgeBracket(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return s.respond(c, stats.ByAgeBracket(records))
}

// GetByProgramLevel godoc
// @Summary      Statistics per program and level
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/program-levels [get]
func (s *StatsService) GetByProgramLevel(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return s.respond(c, stats.ByProgramLevel(records))
}

// GetTeacher godoc
// @Summary      Statistics for a single teacher
// @Tags         statistics
// @Produce      json
// @Param        name  query  string  true  "Teacher name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stats/teacher [get]
func (s *StatsService) GetTeacher(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query parameter 'name' is required"})
	}
	records := models.Filter{Teacher: name}.Apply(s.snapshot.Records)
	overall, err := stats.Overall(records)
	if errors.Is(err, stats.ErrNoRecords) {
		return c.Status(404).JSON(fiber.Map{"error": "no records for teacher " + name})
	}
	return s.respond(c, fiber.Map{"teacher": name, "stats": overall})
}

// GetCourse godoc
// @Summary      Statistics for a single course
// @Tags         statistics
// @Produce      json
// @Param        code  query  string  true  "Course code"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stats/course [get]
func (s *StatsService) GetCourse(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query parameter 'code' is required"})
	}
	records := models.Filter{CourseCode: code}.Apply(s.snapshot.Records)
	overall, err := stats.Overall(records)
	if errors.Is(err, stats.ErrNoRecords) {
		return c.Status(404).JSON(fiber.Map{"error": "no records for course " + code})
	}
	return s.respond(c, fiber.Map{"course": code, "stats": overall})
}

// GetHistogram godoc
// @Summary      Grade distribution bins
// @Tags         statistics
// @Produce      json
// @Param        bins  query  int  false  "Bin count (default 20)"
// @Success      200  {object}  map[string]interface{}
// @Router       /stats/histogram [get]
func (s *StatsService) GetHistogram(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	binCount := c.QueryInt("bins", 20)
	bins, err := stats.Histogram(records, binCount)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return s.respond(c, bins)
}
