package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"grade-analytics/app/models"
	"grade-analytics/app/service"
)

// SetupRoutes wires the read-only query API over a loaded snapshot.
func SetupRoutes(app *fiber.App, snapshot *models.Snapshot) {
	// Services
	statsService := service.NewStatsService(snapshot)
	rankingService := service.NewRankingService(snapshot)
	metaService := service.NewMetaService(snapshot)

	app.Get("/healthz", metaService.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// Referentials
	api.Get("/departments", metaService.GetDepartments)
	api.Get("/programs", metaService.GetPrograms)
	api.Get("/teachers", metaService.GetTeachers)
	api.Get("/courses", metaService.GetCourses)

	// Statistics
	st := api.Group("/stats")
	st.Get("/overall", statsService.GetOverall)
	st.Get("/departments", statsService.GetByDepartment)
	st.Get("/courses", statsService.GetByCourse)
	st.Get("/program-levels", statsService.GetByProgramLevel)
	st.Get("/gender", statsService.GetByGender)
	st.Get("/age-brackets", statsService.GetByAgeBracket)
	st.Get("/histogram", statsService.GetHistogram)
	st.Get("/teacher", statsService.GetTeacher)
	st.Get("/course", statsService.GetCourse)

	// Rankings
	rk := api.Group("/rankings")
	rk.Get("/", rankingService.GetOverall)
	rk.Get("/departments", rankingService.GetByDepartment)
	rk.Get("/courses", rankingService.GetByCourse)
	rk.Get("/program-levels", rankingService.GetByProgramLevel)
}
