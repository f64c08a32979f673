package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"coursecatalog/backend/models"
	"coursecatalog/backend/progress"
	"coursecatalog/backend/storage"
	"coursecatalog/backend/utils"
)

type EnrollmentsController struct {
	Store storage.Storage
}

func NewEnrollmentsController(store storage.Storage) *EnrollmentsController {
	return &EnrollmentsController{Store: store}
}

type enrollmentRequest struct {
	UserID   int `json:"userId"`
	CourseID int `json:"courseId"`
}

// GetUserEnrollments returns a user's enrollments, each joined with the
// course and the recomputed completion figures.
func (ec *EnrollmentsController) GetUserEnrollments(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	enrollments, err := ec.Store.GetEnrollmentsByUser(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrollments")
	}

	views := make([]models.EnrollmentWithProgress, 0, len(enrollments))
	for _, enrollment := range enrollments {
		view := models.EnrollmentWithProgress{Enrollment: enrollment}

		// Tolerate a dangling course reference; the course stays null.
		if course, err := ec.Store.GetCourse(enrollment.CourseID); err == nil {
			view.Course = course
		}

		lessons, err := ec.Store.GetLessonsByCourse(enrollment.CourseID)
		if err != nil {
			return utils.InternalServerError(c, "Failed to fetch enrollments")
		}
		records, err := ec.Store.GetUserCourseProgress(userID, enrollment.CourseID)
		if err != nil {
			return utils.InternalServerError(c, "Failed to fetch enrollments")
		}

		view.Progress, view.CompletedLessons, view.TotalLessons = progress.Summarize(lessons, records)
		views = append(views, view)
	}

	return c.JSON(views)
}

// CreateEnrollment enrolls a user in a course. The storage layer enforces
// the one-enrollment-per-pair invariant and the course existence check.
func (ec *EnrollmentsController) CreateEnrollment(c *fiber.Ctx) error {
	var req enrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid enrollment data")
	}
	if req.UserID <= 0 || req.CourseID <= 0 {
		return utils.BadRequest(c, "Invalid enrollment data")
	}

	enrollment, err := ec.Store.CreateEnrollment(req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			return utils.Conflict(c, "Already enrolled in this course")
		case errors.Is(err, storage.ErrNotFound):
			return utils.NotFound(c, "Course not found")
		default:
			return utils.InternalServerError(c, "Failed to create enrollment")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}
