package dashboard_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"grade-analytics/app/dataset"
	"grade-analytics/app/models"
	"grade-analytics/dashboard"
)

func testSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()
	cfg := dataset.Default()
	cfg.Students = 30
	records, err := dataset.Generate(cfg)
	assert.NoError(t, err)

	return &models.Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Source:   "test.csv",
		Records:  records,
	}
}

func TestIndex(t *testing.T) {
	snapshot := testSnapshot(t)
	app := dashboard.NewServer(snapshot).App()

	t.Run("Success: full cohort page", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		resp, err := app.Test(req, 10000)

		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		page := string(body)
		assert.Contains(t, page, "Top students")
		assert.Contains(t, page, "Download CSV")
	})

	t.Run("Success: empty subset shows notice", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?department=Astrology", nil)
		resp, err := app.Test(req, 10000)

		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "No records match")
	})
}

func TestChart(t *testing.T) {
	snapshot := testSnapshot(t)
	app := dashboard.NewServer(snapshot).App()

	t.Run("Success: histogram PNG", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/charts/histogram.png", nil)
		resp, err := app.Test(req, 10000)

		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		body, _ := io.ReadAll(resp.Body)
		assert.True(t, strings.HasPrefix(string(body), "\x89PNG"))
	})

	t.Run("Error: unknown chart name", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/charts/spiral.png", nil)
		resp, err := app.Test(req, 10000)

		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Error: empty subset", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/charts/histogram.png?department=Astrology", nil)
		resp, err := app.Test(req, 10000)

		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestExportCSV(t *testing.T) {
	snapshot := testSnapshot(t)
	app := dashboard.NewServer(snapshot).App()

	req := httptest.NewRequest("GET", "/export/csv?department=Computer+Science", nil)
	resp, err := app.Test(req, 10000)

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Equal(t, strings.Join(models.Columns, ","), lines[0])
	assert.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		assert.Contains(t, line, "Computer Science")
	}
}

func TestExportPDF(t *testing.T) {
	snapshot := testSnapshot(t)
	app := dashboard.NewServer(snapshot).App()

	req := httptest.NewRequest("GET", "/export/pdf", nil)
	resp, err := app.Test(req, 30000)

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}
