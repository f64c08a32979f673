package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"coursecatalog/backend/models"
	"coursecatalog/backend/storage"
	"coursecatalog/backend/utils"
)

type CoursesController struct {
	Store storage.Storage
}

func NewCoursesController(store storage.Storage) *CoursesController {
	return &CoursesController{Store: store}
}

// GetCourses returns the whole catalog, or one category's slice of it when
// the category query parameter is present.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		categoryID, err := strconv.Atoi(category)
		if err != nil {
			return utils.BadRequest(c, "Invalid category ID")
		}
		courses, err := cc.Store.GetCoursesByCategory(categoryID)
		if err != nil {
			return utils.InternalServerError(c, "Failed to fetch courses")
		}
		return c.JSON(courses)
	}

	courses, err := cc.Store.GetCourses()
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch courses")
	}
	return c.JSON(courses)
}

// GetCourseDetails returns a course joined with its lessons in order.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, err := cc.Store.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	lessons, err := cc.Store.GetLessonsByCourse(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	return c.JSON(models.CourseWithLessons{Course: *course, Lessons: lessons})
}

// GetCategories returns all course categories.
func (cc *CoursesController) GetCategories(c *fiber.Ctx) error {
	categories, err := cc.Store.GetCategories()
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch categories")
	}
	return c.JSON(categories)
}
