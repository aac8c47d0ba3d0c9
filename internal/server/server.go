package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/config"
	"nexora.lk/campuscore/internal/handler"
	"nexora.lk/campuscore/internal/middleware"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/internal/service"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	accountRepo := repository.NewAccountRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	lecturerRepo := repository.NewLecturerRepository(db)
	hodRepo := repository.NewHODRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	examRepo := repository.NewExamResultRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	convocationRepo := repository.NewConvocationRepository(db)

	authSvc := service.NewAuthService(accountRepo, redisClient, cfg)
	authHandler := handler.NewAuthHandler(authSvc)

	studentSvc := service.NewStudentService(studentRepo, accountRepo, departmentRepo, courseRepo)
	studentHandler := handler.NewStudentHandler(studentSvc)

	lecturerSvc := service.NewLecturerService(lecturerRepo, accountRepo, departmentRepo, courseRepo)
	lecturerHandler := handler.NewLecturerHandler(lecturerSvc)

	hodSvc := service.NewHODService(hodRepo, accountRepo, departmentRepo)
	hodHandler := handler.NewHODHandler(hodSvc)

	staffSvc := service.NewStaffService(staffRepo, accountRepo, departmentRepo)
	staffHandler := handler.NewStaffHandler(staffSvc)

	directorySvc := service.NewDirectoryService(departmentRepo, courseRepo)
	departmentHandler := handler.NewDepartmentHandler(directorySvc)
	courseHandler := handler.NewCourseHandler(directorySvc)

	examSvc := service.NewExamResultService(examRepo, studentRepo, courseRepo)
	examHandler := handler.NewExamResultHandler(examSvc)

	importSvc := service.NewImportService(
		studentRepo, lecturerRepo, hodRepo, staffRepo,
		accountRepo, departmentRepo, courseRepo,
	)
	importHandler := handler.NewImportHandler(importSvc)

	timetableSvc := service.NewTimetableService(timetableRepo, courseRepo, lecturerRepo, departmentRepo)
	timetableHandler := handler.NewTimetableHandler(timetableSvc)

	convocationSvc := service.NewConvocationService(convocationRepo, courseRepo)
	convocationHandler := handler.NewConvocationHandler(convocationSvc)

	router := gin.New()

	setupCORS(router, cfg)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		// Lifecycle writes are an admin concern; the director passes the
		// same gate by role expansion.
		admin := protected.Group("")
		admin.Use(authMiddleware.RequireRoles(model.RoleAdmin))
		{
			admin.POST("/students", studentHandler.Create)
			admin.PUT("/students/:id", studentHandler.Update)
			admin.DELETE("/students/:id", studentHandler.Delete)

			admin.POST("/lecturers", lecturerHandler.Create)
			admin.PUT("/lecturers/:id", lecturerHandler.Update)
			admin.DELETE("/lecturers/:id", lecturerHandler.Delete)

			admin.POST("/hods", hodHandler.Create)
			admin.PUT("/hods/:id", hodHandler.Update)
			admin.DELETE("/hods/:id", hodHandler.Delete)

			admin.POST("/staff", staffHandler.Create)
			admin.PUT("/staff/:id", staffHandler.Update)
			admin.DELETE("/staff/:id", staffHandler.Delete)

			admin.POST("/departments", departmentHandler.Create)
			admin.PUT("/departments/:id", departmentHandler.Update)
			admin.DELETE("/departments/:id", departmentHandler.Delete)

			admin.POST("/courses", courseHandler.Create)
			admin.PUT("/courses/:id", courseHandler.Update)
			admin.DELETE("/courses/:id", courseHandler.Delete)

			admin.POST("/import", importHandler.Import)

			admin.POST("/convocations", convocationHandler.Create)
			admin.PUT("/convocations/:id", convocationHandler.Update)
			admin.DELETE("/convocations/:id", convocationHandler.Delete)
		}

		staffOrAbove := protected.Group("")
		staffOrAbove.Use(authMiddleware.RequireRoles(model.RoleAdmin, model.RoleStaff, model.RoleHOD))
		{
			staffOrAbove.GET("/students", studentHandler.GetAll)
			staffOrAbove.GET("/students/:id", studentHandler.Get)
			staffOrAbove.GET("/lecturers", lecturerHandler.GetAll)
			staffOrAbove.GET("/lecturers/:id", lecturerHandler.Get)
			staffOrAbove.GET("/hods", hodHandler.GetAll)
			staffOrAbove.GET("/hods/:id", hodHandler.Get)
			staffOrAbove.GET("/staff", staffHandler.GetAll)
			staffOrAbove.GET("/staff/:id", staffHandler.Get)

			staffOrAbove.GET("/convocations", convocationHandler.GetAll)
			staffOrAbove.GET("/convocations/:id", convocationHandler.Get)

			staffOrAbove.POST("/exam-results", examHandler.Create)
			staffOrAbove.POST("/exam-results/upload", examHandler.BulkUpload)
			staffOrAbove.PUT("/exam-results/:id", examHandler.Update)
			staffOrAbove.DELETE("/exam-results/:id", examHandler.Delete)
			staffOrAbove.GET("/exam-results", examHandler.GetAll)

			staffOrAbove.POST("/timetables", timetableHandler.Create)
			staffOrAbove.PUT("/timetables/:id", timetableHandler.Update)
			staffOrAbove.DELETE("/timetables/:id", timetableHandler.Delete)
		}

		// Directory reads and per-student results are open to any
		// authenticated role.
		protected.GET("/departments", departmentHandler.GetAll)
		protected.GET("/departments/:id", departmentHandler.Get)
		protected.GET("/courses", courseHandler.GetAll)
		protected.GET("/courses/:id", courseHandler.Get)

		protected.GET("/exam-results/student/:studentId", examHandler.GetByStudent)
		protected.GET("/exam-results/:id", examHandler.Get)

		protected.GET("/timetables", timetableHandler.GetAll)
		protected.GET("/timetables/:id", timetableHandler.Get)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	origins := strings.Split(cfg.AllowedOrigins, ",")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
