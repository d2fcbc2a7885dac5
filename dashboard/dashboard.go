// Package dashboard serves the interactive HTML view over a snapshot. Every
// request recomputes its aggregates from the filtered subset, so the page,
// the chart images and the exports always agree.
package dashboard

import (
	"bytes"
	"embed"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"grade-analytics/app/charts"
	"grade-analytics/app/models"
	"grade-analytics/app/ranking"
	"grade-analytics/app/report"
	"grade-analytics/app/repository"
	"grade-analytics/app/stats"
	"grade-analytics/utils"
)

//go:embed views/*.html
var viewsFS embed.FS

const topN = 10

type Server struct {
	snapshot *models.Snapshot
	renderer *charts.Renderer
}

func NewServer(snapshot *models.Snapshot) *Server {
	return &Server{snapshot: snapshot, renderer: charts.NewRenderer()}
}

// App builds the Fiber app with the embedded views.
func (s *Server) App() *fiber.App {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	app := fiber.New(fiber.Config{
		AppName: "grade-analytics dashboard",
		Views:   engine,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", s.Index)
	app.Get("/charts/:name", s.Chart)
	app.Get("/export/csv", s.ExportCSV)
	app.Get("/export/pdf", s.ExportPDF)
	return app
}

type metric struct {
	Label string
	Value string
}

// Index renders the filterable overview page.
func (s *Server) Index(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(400).SendString("invalid filter parameters")
	}
	subset := f.Apply(s.snapshot.Records)

	data := fiber.Map{
		"Filter":      f,
		"Departments": distinct(s.snapshot.Records, func(r models.Record) string { return r.Department }),
		"Programs":    distinct(s.snapshot.Records, func(r models.Record) string { return r.Program }),
		"Levels":      distinct(s.snapshot.Records, func(r models.Record) string { return r.Level }),
		"Teachers":    distinct(s.snapshot.Records, func(r models.Record) string { return r.Teacher }),
		"Query":       string(c.Request().URI().QueryString()),
	}

	if len(subset) == 0 {
		data["NoData"] = true
		return c.Render("views/index", data)
	}

	overall, err := stats.Overall(subset)
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	data["Metrics"] = []metric{
		{"Grades", strconv.Itoa(overall.Count)},
		{"Students", strconv.Itoa(len(models.CollectStudents(subset)))},
		{"Mean", utils.FormatGrade(overall.Mean)},
		{"Median", utils.FormatGrade(overall.Median)},
		{"Std dev", utils.FormatGrade(overall.StdDev)},
		{"Pass rate %", utils.FormatGrade(overall.PassRate)},
	}
	top := ranking.Overall(subset, ranking.Options{})
	if len(top) > topN {
		top = top[:topN]
	}
	data["Top"] = top
	return c.Render("views/index", data)
}

// Chart renders one PNG for the filtered subset. The name parameter carries
// a .png suffix so plain <img> tags work.
func (s *Server) Chart(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(400).SendString("invalid filter parameters")
	}
	subset := f.Apply(s.snapshot.Records)
	if len(subset) == 0 {
		return c.Status(404).SendString("no records match the given filters")
	}

	var buf bytes.Buffer
	switch strings.TrimSuffix(c.Params("name"), ".png") {
	case "histogram":
		bins, err := stats.Histogram(subset, 20)
		if err != nil {
			return c.Status(500).SendString(err.Error())
		}
		err = s.renderer.GradeHistogram(bins, &buf)
		if err != nil {
			return c.Status(500).SendString(err.Error())
		}
	case "departments":
		if err := s.renderer.MeanBar("Mean grade by department", stats.ByDepartment(subset), &buf); err != nil {
			return c.Status(500).SendString(err.Error())
		}
	case "courses":
		if err := s.renderer.MeanBar("Mean grade by course", stats.ByCourse(subset), &buf); err != nil {
			return c.Status(500).SendString(err.Error())
		}
	case "age":
		if err := s.renderer.MeanBar("Mean grade by age bracket", stats.ByAgeBracket(subset), &buf); err != nil {
			return c.Status(500).SendString(err.Error())
		}
	case "gender":
		if err := s.renderer.PassRateBar("Pass rate by gender", stats.ByGender(subset), &buf); err != nil {
			return c.Status(500).SendString(err.Error())
		}
	default:
		return c.Status(404).SendString("unknown chart")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// ExportCSV downloads the filtered subset as CSV.
func (s *Server) ExportCSV(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(400).SendString("invalid filter parameters")
	}
	subset := f.Apply(s.snapshot.Records)
	if len(subset) == 0 {
		return c.Status(404).SendString("no records match the given filters")
	}

	var buf bytes.Buffer
	if err := repository.WriteCSV(subset, &buf); err != nil {
		return c.Status(500).SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="grades_export.csv"`)
	return c.Send(buf.Bytes())
}

// ExportPDF builds the full report over the filtered subset.
func (s *Server) ExportPDF(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(400).SendString("invalid filter parameters")
	}
	subset := f.Apply(s.snapshot.Records)
	if len(subset) == 0 {
		return c.Status(404).SendString("no records match the given filters")
	}

	d, err := report.Collect(subset, subset[0].AcademicYear, time.Now().UTC())
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	var buf bytes.Buffer
	if err := report.Build(d, &buf); err != nil {
		return c.Status(500).SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="grade_report.pdf"`)
	return c.Send(buf.Bytes())
}

func parseFilter(c *fiber.Ctx) (models.Filter, error) {
	var f models.Filter
	if err := c.QueryParser(&f); err != nil {
		return models.Filter{}, err
	}
	return f, nil
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
