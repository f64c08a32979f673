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

type LessonsController struct {
	Store storage.Storage
}

func NewLessonsController(store storage.Storage) *LessonsController {
	return &LessonsController{Store: store}
}

// GetLessonDetails returns a lesson joined with its course and its
// previous/next neighbors in orderIndex order. A dangling course reference
// just leaves the course null.
func (lc *LessonsController) GetLessonDetails(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	lesson, err := lc.Store.GetLesson(lessonID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Failed to fetch lesson")
	}

	detail := models.LessonDetail{Lesson: *lesson}

	if course, err := lc.Store.GetCourse(lesson.CourseID); err == nil {
		detail.Course = course
	}

	siblings, err := lc.Store.GetLessonsByCourse(lesson.CourseID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch lesson")
	}
	detail.PreviousLesson, detail.NextLesson = progress.Neighbors(siblings, lesson.ID)

	return c.JSON(detail)
}
