package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/controllers"
	"github.com/smarthospital/cleantrack/middlewares"
	"github.com/smarthospital/cleantrack/services"
)

// SetupRouter merakit semua service dan controller. Client eksternal
// (verifier, asset store) di-inject dari entry point, bukan global.
func SetupRouter(db *gorm.DB, verifier services.ImageVerifier, assets services.AssetStore, uploadDir string) *gin.Engine {
	r := gin.Default()

	// Foto hasil upload disajikan langsung dari disk
	r.Static("/uploads", uploadDir)

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi service
	taskSvc := services.NewTaskService(db)
	verificationSvc := services.NewVerificationService(db, verifier, assets)
	approvalSvc := services.NewApprovalService(db)
	reportSvc := services.NewReportService(db)

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	taskCtrl := controllers.NewTaskController(taskSvc)
	verificationCtrl := controllers.NewVerificationController(verificationSvc)
	approvalCtrl := controllers.NewApprovalController(approvalSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// -- CLEANER --
		cleaner := auth.Group("/")
		cleaner.Use(middlewares.RequireRole("cleaner"))
		{
			cleaner.GET("/tasks/:cleaner_id", taskCtrl.GetCleanerTasks)
			cleaner.POST("/verify_room", verificationCtrl.VerifyRoom)
		}

		// -- MANAGER --
		manager := auth.Group("/")
		manager.Use(middlewares.RequireRole("manager"))
		{
			manager.POST("/assign_task", taskCtrl.AssignTask)
			manager.GET("/dashboard", approvalCtrl.GetDashboard)
			manager.POST("/approve", approvalCtrl.Approve)
			manager.GET("/report/weekly", reportCtrl.WeeklyReport)
			manager.GET("/report/weekly/data", reportCtrl.WeeklyReportData)
		}
	}

	return r
}
