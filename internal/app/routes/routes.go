package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/controllers"
	"github.com/umut/campusgate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	maintenanceController *controllers.MaintenanceController,
	toolController *controllers.ToolController,
	campusController *controllers.CampusController,
	collegeController *controllers.CollegeController,
	metricsController *controllers.MetricsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/gpas", studentController.GetAllGPAs)
		students.PATCH("/:userId", studentController.UpdateStudent)
		students.DELETE("/:userId", studentController.DeleteStudent)
		students.GET("/:userId/gpa", studentController.GetStudentGPA)
		students.GET("/:userId/schedule", studentController.GetSchedule)
		students.GET("/:userId/advisor", studentController.GetAdvisorEmail)
		students.GET("/:userId/clubs", studentController.GetClubs)
	}

	// Maintenance routes. The update/delete prefixes and the get/post tool
	// segments mirror the paths the facilities dashboard already calls.
	maintenance := v1.Group("/maintenance-requests")
	{
		maintenance.GET("", maintenanceController.GetRequests)
		maintenance.GET("/staff/:userId", maintenanceController.GetStaffRequests)
		maintenance.GET("/student/:userId", maintenanceController.GetStudentRequests)
		maintenance.POST("", maintenanceController.CreateRequest)
		maintenance.PATCH("/update/:id", maintenanceController.UpdateRequest)
		maintenance.PUT("/update/:id", maintenanceController.UpdateRequest)
		maintenance.DELETE("/delete/:id", maintenanceController.DeleteRequest)
		maintenance.GET("/:id/get/tools", maintenanceController.GetRequestTools)
		maintenance.POST("/:id/post/tools", maintenanceController.AttachTool)
		maintenance.DELETE("/:id/delete/tools/:tool", maintenanceController.DetachTool)
	}
	v1.GET("/maintenance-staffs/:staffId/hours", maintenanceController.GetStaffHours)

	// Tool inventory routes
	tools := v1.Group("/tools")
	{
		tools.GET("", toolController.GetTools)
		tools.POST("", toolController.CreateTool)
		tools.PUT("/:productName", toolController.UpdateTool)
		tools.DELETE("/:productName", toolController.DeleteTool)
	}

	// Club routes
	clubs := v1.Group("/clubs")
	{
		clubs.GET("", campusController.GetClubs)
		clubs.POST("/:name/members", campusController.JoinClub)
		clubs.DELETE("/:name/members/:studentId", campusController.LeaveClub)
	}

	// Instrument and rental routes
	v1.GET("/instruments", campusController.GetInstruments)
	rentals := v1.Group("/rentals")
	{
		rentals.GET("", campusController.GetRentals)
		rentals.POST("", campusController.CreateRental)
		rentals.PATCH("/:rentalId", campusController.UpdateRental)
	}

	// Classroom and reservation routes
	classrooms := v1.Group("/classrooms")
	{
		classrooms.GET("", campusController.GetClassrooms)
		classrooms.GET("/maintenance/recent", campusController.GetRecentlyMaintained)
	}
	reserves := v1.Group("/reserves")
	{
		reserves.GET("", campusController.GetReservations)
		reserves.POST("", campusController.CreateReservation)
		reserves.DELETE("/:reserveId", campusController.DeleteReservation)
	}

	// College routes
	colleges := v1.Group("/colleges")
	{
		colleges.GET("", collegeController.GetColleges)
		colleges.POST("", collegeController.CreateCollege)
		colleges.DELETE("/:collegeName", collegeController.DeleteCollege)
		colleges.GET("/averages/gpa", metricsController.GetCollegeGPAs)
		colleges.GET("/metrics/student-teacher-ratio", metricsController.GetStudentTeacherRatios)
	}
	v1.GET("/rankings", collegeController.GetRankings)
	v1.GET("/advisors", collegeController.GetAdvisors)
	v1.GET("/courses/vacancies", metricsController.GetCourseVacancies)

	// Report routes. The president group serves university-wide figures; the
	// dean group resolves the dean's college first and scopes everything to it.
	metrics := v1.Group("/metrics")
	{
		metrics.GET("/demographics", metricsController.GetDemographics)
		metrics.GET("/alumni", metricsController.GetAlumniEmployment)

		president := metrics.Group("/president/budget")
		{
			president.GET("", metricsController.GetPresidentBudget)
			president.GET("/spending-trend", metricsController.GetPresidentSpending)
			president.GET("/by-course", metricsController.GetPresidentCourseBudgets)
			president.GET("/donations", metricsController.GetPresidentDonations)
			president.GET("/donations-by-course", metricsController.GetPresidentCourseDonations)
		}

		deans := metrics.Group("/deans/:deanId")
		{
			deans.GET("/college", metricsController.GetDeanCollege)
			deans.GET("/budget/summary", metricsController.GetDeanBudgetSummary)
			deans.GET("/budget/spending-trend", metricsController.GetDeanSpendingTrend)
			deans.GET("/budget/by-course", metricsController.GetDeanCourseBudgets)
			deans.GET("/budget/donations", metricsController.GetDeanDonations)
			deans.GET("/budget/donations-by-course", metricsController.GetDeanCourseDonations)
			deans.GET("/alumni/placement/summary", metricsController.GetDeanPlacementSummary)
			deans.GET("/alumni/placement/by-course", metricsController.GetDeanPlacementByCourse)
			deans.GET("/alumni/placement/by-year", metricsController.GetDeanPlacementByYear)
		}
	}
}
