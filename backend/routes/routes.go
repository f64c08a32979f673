package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursecatalog/backend/controllers"
	"coursecatalog/backend/storage"
)

func SetupRoutes(app *fiber.App, store storage.Storage) {
	// Catalog routes
	coursesController := controllers.NewCoursesController(store)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/:id", coursesController.GetCourseDetails)
	app.Get("/api/categories", coursesController.GetCategories)

	// Lesson routes
	lessonsController := controllers.NewLessonsController(store)
	app.Get("/api/lessons/:id", lessonsController.GetLessonDetails)

	// Enrollment routes
	enrollmentsController := controllers.NewEnrollmentsController(store)
	app.Get("/api/enrollments/:userId", enrollmentsController.GetUserEnrollments)
	app.Post("/api/enrollments", enrollmentsController.CreateEnrollment)

	// Progress routes
	progressController := controllers.NewProgressController(store)
	app.Get("/api/progress/:userId/course/:courseId", progressController.GetCourseProgress)
	app.Get("/api/progress/:userId/:lessonId", progressController.GetLessonProgress)
	app.Post("/api/progress", progressController.UpdateLessonProgress)
}
