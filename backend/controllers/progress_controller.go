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

type ProgressController struct {
	Store storage.Storage
}

func NewProgressController(store storage.Storage) *ProgressController {
	return &ProgressController{Store: store}
}

type progressRequest struct {
	UserID    int  `json:"userId"`
	LessonID  int  `json:"lessonId"`
	Completed bool `json:"completed"`
}

// GetLessonProgress returns a user's progress record for one lesson. When
// no record exists the client gets a plain {"completed": false} rather than
// an error; not having started a lesson is a normal state.
func (pc *ProgressController) GetLessonProgress(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID or lesson ID")
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID or lesson ID")
	}

	record, err := pc.Store.GetLessonProgress(userID, lessonID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"completed": false})
		}
		return utils.InternalServerError(c, "Failed to fetch lesson progress")
	}

	return c.JSON(record)
}

// UpdateLessonProgress marks a lesson complete or incomplete for a user,
// creating or updating the single record for the pair.
func (pc *ProgressController) UpdateLessonProgress(c *fiber.Ctx) error {
	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid progress data")
	}
	if req.UserID <= 0 || req.LessonID <= 0 {
		return utils.BadRequest(c, "Invalid progress data")
	}

	record, err := pc.Store.UpsertLessonProgress(req.UserID, req.LessonID, req.Completed)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Failed to update lesson progress")
	}

	return c.JSON(record)
}

// GetCourseProgress returns a user's annotated lesson list for a course
// along with the recomputed completion figures.
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID or course ID")
	}
	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID or course ID")
	}

	lessons, err := pc.Store.GetLessonsByCourse(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch course progress")
	}
	records, err := pc.Store.GetUserCourseProgress(userID, courseID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch course progress")
	}

	view := models.CourseProgress{
		Lessons: progress.AnnotateLessons(lessons, records),
	}
	view.Progress, view.CompletedLessons, view.TotalLessons = progress.Summarize(lessons, records)

	return c.JSON(view)
}
