package service_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"grade-analytics/app/models"
	"grade-analytics/app/service"
	"grade-analytics/app/stats"
)

// --- SETUP HELPERS ---

func testSnapshot() *models.Snapshot {
	rec := func(id, dept, course, teacher string, grade float64) models.Record {
		return models.Record{
			StudentID:  id,
			LastName:   "KONE",
			FirstName:  "Awa",
			Gender:     "F",
			Age:        21,
			Department: dept,
			Program:    "Software Engineering",
			Level:      "L3",
			CourseCode: course,
			Teacher:    teacher,
			Grade:      grade,
		}
	}
	return &models.Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Source:   "test.csv",
		Records: []models.Record{
			rec("EPL0001", "Computer Science", "A", "A. KOUADIO", 12),
			rec("EPL0002", "Computer Science", "B", "J. DADEOU", 15),
			rec("EPL0001", "Computer Science", "A2", "A. KOUADIO", 9),
			rec("EPL0002", "Computer Science", "B2", "J. DADEOU", 18),
			rec("EPL0003", "Civil Engineering", "A", "M. TRAORE", 14),
			rec("EPL0003", "Civil Engineering", "B", "M. TRAORE", 11),
		},
	}
}

func decodeBody(t *testing.T, resp io.Reader, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp).Decode(out))
}

// --- TEST CASES ---

func TestStatsGetOverall(t *testing.T) {
	snapshot := testSnapshot()
	svc := service.NewStatsService(snapshot)
	app := fiber.New()
	app.Get("/stats/overall", svc.GetOverall)

	t.Run("Success: full cohort", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/overall", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			SnapshotID string              `json:"snapshotId"`
			Data       models.OverallStats `json:"data"`
		}
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, snapshot.ID.String(), body.SnapshotID)

		want, err := stats.Overall(snapshot.Records)
		assert.NoError(t, err)
		assert.Equal(t, want.Count, body.Data.Count)
		assert.InDelta(t, want.Mean, body.Data.Mean, 0.001)
	})

	t.Run("Success: filtered subset", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/overall?department=Civil+Engineering", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Data models.OverallStats `json:"data"`
		}
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, 2, body.Data.Count)
		assert.InDelta(t, 12.5, body.Data.Mean, 0.001)
	})

	t.Run("Error: filter matches nothing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/overall?department=Astrology", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestStatsGetByCourse(t *testing.T) {
	svc := service.NewStatsService(testSnapshot())
	app := fiber.New()
	app.Get("/stats/courses", svc.GetByCourse)

	req := httptest.NewRequest("GET", "/stats/courses", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []models.GroupStats `json:"data"`
	}
	decodeBody(t, resp.Body, &body)
	assert.Len(t, body.Data, 4)
	assert.Equal(t, "A", body.Data[0].Key)
	assert.InDelta(t, 13, body.Data[0].Mean, 0.001)
}

func TestStatsGetTeacher(t *testing.T) {
	svc := service.NewStatsService(testSnapshot())
	app := fiber.New()
	app.Get("/stats/teacher", svc.GetTeacher)

	t.Run("Success: known teacher", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/teacher?name=M.+TRAORE", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Error: name missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/teacher", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Error: unknown teacher", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/teacher?name=Nobody", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestStatsGetHistogram(t *testing.T) {
	svc := service.NewStatsService(testSnapshot())
	app := fiber.New()
	app.Get("/stats/histogram", svc.GetHistogram)

	req := httptest.NewRequest("GET", "/stats/histogram?bins=4", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []models.Bin `json:"data"`
	}
	decodeBody(t, resp.Body, &body)
	assert.Len(t, body.Data, 4)
}

func TestRankingGetOverall(t *testing.T) {
	svc := service.NewRankingService(testSnapshot())
	app := fiber.New()
	app.Get("/rankings", svc.GetOverall)

	t.Run("Success: ordered by score descending", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Data []models.RankingEntry `json:"data"`
		}
		decodeBody(t, resp.Body, &body)
		assert.Len(t, body.Data, 3)
		// EPL0002 has (15+18)/2, EPL0003 (14+11)/2, EPL0001 (12+9)/2.
		assert.Equal(t, "EPL0002", body.Data[0].StudentID)
		assert.Equal(t, 1, body.Data[0].Rank)
		assert.Equal(t, "EPL0003", body.Data[1].StudentID)
		assert.Equal(t, "EPL0001", body.Data[2].StudentID)
	})

	t.Run("Success: limit truncates", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings?limit=2", nil)
		resp, _ := app.Test(req)

		var body struct {
			Data []models.RankingEntry `json:"data"`
		}
		decodeBody(t, resp.Body, &body)
		assert.Len(t, body.Data, 2)
	})

	t.Run("Error: filter matches nothing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings?department=Astrology", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestMetaReferentials(t *testing.T) {
	svc := service.NewMetaService(testSnapshot())
	app := fiber.New()
	app.Get("/departments", svc.GetDepartments)
	app.Get("/teachers", svc.GetTeachers)

	t.Run("Success: departments sorted ascending", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/departments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, 200, resp.StatusCode)

		var depts []string
		decodeBody(t, resp.Body, &depts)
		assert.Equal(t, []string{"Civil Engineering", "Computer Science"}, depts)
	})

	t.Run("Success: teachers narrowed by department", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/teachers?department=Civil+Engineering", nil)
		resp, _ := app.Test(req)

		var names []string
		decodeBody(t, resp.Body, &names)
		assert.Equal(t, []string{"M. TRAORE"}, names)
	})
}

func TestMetaHealth(t *testing.T) {
	snapshot := testSnapshot()
	svc := service.NewMetaService(snapshot)
	app := fiber.New()
	app.Get("/healthz", svc.Health)

	req := httptest.NewRequest("GET", "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(len(snapshot.Records)), body["records"])
}
