package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/opencampus/ccrm-api/internal/handler"
	internalmiddleware "github.com/opencampus/ccrm-api/internal/middleware"
	"github.com/opencampus/ccrm-api/internal/repository"
	"github.com/opencampus/ccrm-api/internal/service"
	"github.com/opencampus/ccrm-api/pkg/config"
	"github.com/opencampus/ccrm-api/pkg/logger"
	corsmiddleware "github.com/opencampus/ccrm-api/pkg/middleware/cors"
	reqidmiddleware "github.com/opencampus/ccrm-api/pkg/middleware/requestid"
	"github.com/opencampus/ccrm-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	dataStore, err := storage.NewLocalStorage(cfg.DataDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init data directory", "error", err)
	}

	validate := validator.New()

	studentRepo := repository.NewStudentRepository()
	courseRepo := repository.NewCourseRepository()
	instructorRepo := repository.NewInstructorRepository()

	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(studentRepo, courseRepo, cfg.MaxCreditsPerSemester, validate, logr)
	reportSvc := service.NewReportService(studentRepo, courseRepo, studentSvc, logr)
	exportSvc := service.NewExportService(studentRepo, courseRepo, dataStore, reportSvc, cfg.BackupDir, logr, nil, nil)
	metricsSvc := service.NewMetricsService()

	studentHandler := handler.NewStudentHandler(studentSvc, metricsSvc)
	courseHandler := handler.NewCourseHandler(courseSvc, metricsSvc)
	instructorHandler := handler.NewInstructorHandler(instructorSvc, metricsSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	gradeHandler := handler.NewGradeHandler(studentSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	exportHandler := handler.NewExportHandler(exportSvc, metricsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "app": cfg.AppName})
	})
	r.GET("/metrics", metricsHandler.Scrape)

	api := r.Group(cfg.APIPrefix)
	{
		students := api.Group("/students")
		{
			students.GET("", studentHandler.List)
			students.POST("", studentHandler.Create)
			students.GET("/:id", studentHandler.Get)
			students.PUT("/:id", studentHandler.Update)
			students.DELETE("/:id", studentHandler.Delete)
			students.GET("/:id/profile", studentHandler.Profile)
			students.GET("/:id/enrollments", enrollmentHandler.ListForStudent)
			students.DELETE("/:id/enrollments/:code", enrollmentHandler.Unenroll)
			students.GET("/:id/grades", gradeHandler.ListForStudent)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			courses.POST("", courseHandler.Create)
			courses.GET("/by-department", courseHandler.ByDepartment)
			courses.GET("/:code", courseHandler.Get)
			courses.PUT("/:code", courseHandler.Update)
			courses.DELETE("/:code", courseHandler.Delete)
		}

		instructors := api.Group("/instructors")
		{
			instructors.GET("", instructorHandler.List)
			instructors.POST("", instructorHandler.Create)
			instructors.GET("/:id", instructorHandler.Get)
			instructors.DELETE("/:id", instructorHandler.Delete)
			instructors.POST("/:id/courses/:code", instructorHandler.AssignCourse)
			instructors.DELETE("/:id/courses/:code", instructorHandler.UnassignCourse)
		}

		api.POST("/enrollments", enrollmentHandler.Enroll)
		api.POST("/grades", gradeHandler.Assign)

		reports := api.Group("/reports")
		{
			reports.GET("/top-students", reportHandler.TopStudents)
			reports.GET("/courses-by-department", reportHandler.CoursesByDepartment)
			reports.GET("/gpa-distribution", reportHandler.GPADistribution)
			reports.GET("/transcript/:id", reportHandler.Transcript)
		}

		exports := api.Group("/exports")
		{
			exports.POST("/csv", exportHandler.ExportCSV)
			exports.GET("/transcript/:id", exportHandler.TranscriptPDF)
		}
		api.POST("/backups", exportHandler.Backup)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "app", cfg.AppName)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
