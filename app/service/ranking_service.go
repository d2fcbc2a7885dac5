package service

import (
	"github.com/gofiber/fiber/v2"

	"grade-analytics/app/models"
	"grade-analytics/app/ranking"
)

// RankingService serves the ranking module's output over HTTP.
type RankingService struct {
	snapshot *models.Snapshot
}

func NewRankingService(snapshot *models.Snapshot) *RankingService {
	return &RankingService{snapshot: snapshot}
}

func (s *RankingService) filtered(c *fiber.Ctx) ([]models.Record, bool) {
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

// GetOverall godoc
// @Summary      Overall student ranking
// @Tags         rankings
// @Produce      json
// @Param        limit  query  int  false  "Truncate to the top N entries"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /rankings [get]
func (s *RankingService) GetOverall(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	entries := ranking.Overall(records, ranking.Options{})

	var q models.ListQuery
	if err := c.QueryParser(&q); err == nil && q.Limit > 0 && q.Limit < len(entries) {
		entries = entries[:q.Limit]
	}
	return c.JSON(fiber.Map{
		"snapshotId": s.snapshot.ID,
		"data":       entries,
	})
}

// GetByDepartment godoc
// @Summary      Rankings per department
// @Tags         rankings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /rankings/departments [get]
func (s *RankingService) GetByDepartment(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return c.JSON(fiber.Map{
		"snapshotId": s.snapshot.ID,
		"data":       ranking.ByDepartment(records, ranking.Options{}),
	})
}

// GetByCourse godoc
// @Summary      Rankings per course
// @Tags         rankings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /rankings/courses [get]
func (s *RankingService) GetByCourse(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return c.JSON(fiber.Map{
		"snapshotId": s.snapshot.ID,
		"data":       ranking.ByCourse(records),
	})
}

// GetByProgramLevel godoc
// @Summary      Rankings per program and level
// @Tags         rankings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /rankings/program-levels [get]
func (s *RankingService) GetByProgramLevel(c *fiber.Ctx) error {
	records, ok := s.filtered(c)
	if !ok {
		return nil
	}
	return c.JSON(fiber.Map{
		"snapshotId": s.snapshot.ID,
		"data":       ranking.ByProgramLevel(records, ranking.Options{}),
	})
}
