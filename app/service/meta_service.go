package service

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"grade-analytics/app/models"
)

// MetaService serves the referential lists (departments, programs...) and
// the health endpoint.
type MetaService struct {
	snapshot *models.Snapshot
}

func NewMetaService(snapshot *models.Snapshot) *MetaService {
	return &MetaService{snapshot: snapshot}
}

func distinct(records []models.Record, value func(models.Record) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := value(r)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// GetDepartments godoc
// @Summary      List departments
// @Tags         referentials
// @Produce      json
// @Success      200  {array}  string
// @Router       /departments [get]
func (s *MetaService) GetDepartments(c *fiber.Ctx) error {
	return c.JSON(distinct(s.snapshot.Records, func(r models.Record) string {
		return r.Department
	}))
}

// GetPrograms godoc
// @Summary      List programs, optionally narrowed by department
// @Tags         referentials
// @Produce      json
// @Param        department  query  string  false  "Department filter"
// @Success      200  {array}  string
// @Router       /programs [get]
func (s *MetaService) GetPrograms(c *fiber.Ctx) error {
	records := models.Filter{Department: c.Query("department")}.Apply(s.snapshot.Records)
	return c.JSON(distinct(records, func(r models.Record) string {
		return r.Program
	}))
}

// GetTeachers godoc
// @Summary      List teachers, optionally narrowed by department
// @Tags         referentials
// @Produce      json
// @Param        department  query  string  false  "Department filter"
// @Success      200  {array}  string
// @Router       /teachers [get]
func (s *MetaService) GetTeachers(c *fiber.Ctx) error {
	records := models.Filter{Department: c.Query("department")}.Apply(s.snapshot.Records)
	return c.JSON(distinct(records, func(r models.Record) string {
		return r.Teacher
	}))
}

// GetCourses godoc
// @Summary      List course codes, optionally narrowed by level
// @Tags         referentials
// @Produce      json
// @Param        level  query  string  false  "Level filter"
// @Success      200  {array}  string
// @Router       /courses [get]
func (s *MetaService) GetCourses(c *fiber.Ctx) error {
	records := models.Filter{Level: c.Query("level")}.Apply(s.snapshot.Records)
	return c.JSON(distinct(records, func(r models.Record) string {
		return r.CourseCode
	}))
}

// Health godoc
// @Summary      Snapshot health
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /healthz [get]
func (s *MetaService) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"snapshotId": s.snapshot.ID,
		"source":     s.snapshot.Source,
		"loadedAt":   s.snapshot.LoadedAt,
		"records":    len(s.snapshot.Records),
	})
}
