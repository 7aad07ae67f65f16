package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/acadrecords/internal/app/controllers"
	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student routes
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/by-email", studentController.GetStudentByEmail)
			students.GET("/:id", studentController.GetStudentByID)
			students.GET("/:id/courses", studentController.GetStudentCourses)

			// Admin-only mutations
			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:id", studentController.UpdateStudent)
				studentsAdminProtected.POST("/:id/profile-image", studentController.UpdateProfileImage)
				studentsAdminProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Course routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/:id/students", courseController.GetCourseStudents)

			coursesAdminProtected := courses.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
				coursesAdminProtected.PUT("/:id", courseController.UpdateCourse)
				coursesAdminProtected.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Enrollment routes
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.GetAllEnrollments)
			enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)

			enrollmentsAdminProtected := enrollments.Group("")
			enrollmentsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				enrollmentsAdminProtected.POST("", enrollmentController.CreateEnrollment)
				enrollmentsAdminProtected.PUT("/:id", enrollmentController.UpdateEnrollment)
				enrollmentsAdminProtected.DELETE("/:id", enrollmentController.DeleteEnrollment)
			}
		}
	}
}
