package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ccuneo-ui/school-attendance-system/config"
	"github.com/ccuneo-ui/school-attendance-system/handlers"
	"github.com/ccuneo-ui/school-attendance-system/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler()
	prg := handlers.NewProgramHandler()
	stf := handlers.NewStaffHandler()
	enr := handlers.NewEnrollmentHandler()
	att := handlers.NewAttendanceHandler()
	mc := handlers.NewMCardHandler()
	dis := handlers.NewDismissalHandler()
	exp := handlers.NewExportHandler(cfg.BackupKey)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/auth/staff/login", auth.StaffLogin)
	e.GET("/backup/export", exp.Export) // shared-key check inside

	// ===== Staff (any logged-in user) =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	api := e.Group("/api", authMW)

	api.GET("/programs", prg.List)
	api.GET("/staff", stf.List)
	api.GET("/enrollments/:programID", enr.ListByProgram)

	api.GET("/students", std.List)
	api.GET("/students/:id", std.Get)

	api.POST("/attendance", att.Save)
	api.GET("/attendance/:programID/:date", att.List)
	api.GET("/summary/:programID/:start/:end", att.Summary)

	api.GET("/mcard/students", mc.Students)
	api.GET("/mcard/charges", mc.List)
	api.POST("/mcard/charges", mc.Add)

	// dismissal dashboard reads
	api.GET("/dismissal/students", dis.Students)
	api.GET("/dismissal/plan/:date", dis.Plan)
	api.GET("/dismissal/view/:date", dis.View)
	api.GET("/dismissal/electives", dis.Electives)

	// ===== Manage (planner writes, directory edits) =====
	manage := e.Group("/api", authMW, middlewares.RequireManage())

	manage.POST("/students", std.Create)
	manage.PUT("/students/:id", std.Update)
	manage.DELETE("/students/:id", std.Delete)

	manage.POST("/dismissal/plan", dis.SavePlan)
	manage.POST("/dismissal/plan/batch", dis.SaveBatch)
	manage.POST("/dismissal/plan/bulk", dis.BulkAssign)
	manage.POST("/dismissal/load-defaults", dis.LoadDefaults)
	manage.DELETE("/dismissal/plan/:date", dis.ClearDate)
	manage.DELETE("/dismissal/plan/:date/:studentID", dis.DeleteOne)

	manage.DELETE("/mcard/charges/:id", mc.Delete)
}
