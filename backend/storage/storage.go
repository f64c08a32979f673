package storage

import (
	"errors"
	"time"

	"coursecatalog/backend/models"
)

var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness invariant would be violated,
	// such as enrolling in the same course twice.
	ErrConflict = errors.New("conflict")
)

// Storage is the sole access surface over the entity collections. Both the
// in-memory store and the Postgres store implement it; the request layer
// never reaches past it.
//
// Write operations perform their existence checks before mutating anything,
// and each implementation makes the check-then-write pair atomic with
// respect to concurrent callers.
type Storage interface {
	// Users
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user models.User) (*models.User, error)

	// Categories
	GetCategories() ([]models.Category, error)
	GetCategory(id int) (*models.Category, error)
	CreateCategory(category models.Category) (*models.Category, error)

	// Courses
	GetCourses() ([]models.Course, error)
	GetCourse(id int) (*models.Course, error)
	GetCoursesByCategory(categoryID int) ([]models.Course, error)
	CreateCourse(course models.Course) (*models.Course, error)

	// Lessons. GetLessonsByCourse returns the course's lessons sorted
	// ascending by orderIndex, insertion order on ties.
	GetLessonsByCourse(courseID int) ([]models.Lesson, error)
	GetLesson(id int) (*models.Lesson, error)
	CreateLesson(lesson models.Lesson) (*models.Lesson, error)

	// Enrollments. CreateEnrollment fails with ErrConflict when the
	// (userID, courseID) pair is already enrolled and with ErrNotFound
	// when the course does not exist; on success it stamps EnrolledAt.
	GetEnrollmentsByUser(userID int) ([]models.Enrollment, error)
	GetEnrollment(userID, courseID int) (*models.Enrollment, error)
	CreateEnrollment(userID, courseID int) (*models.Enrollment, error)

	// Lesson progress. UpsertLessonProgress fails with ErrNotFound when
	// the lesson does not exist. An existing (userID, lessonID) record is
	// updated in place, keeping its id; otherwise a new record is created.
	// CompletedAt is set to the current time iff completed is true, so a
	// repeated identical submission refreshes the timestamp but changes
	// nothing else.
	GetLessonProgress(userID, lessonID int) (*models.LessonProgress, error)
	GetUserCourseProgress(userID, courseID int) ([]models.LessonProgress, error)
	UpsertLessonProgress(userID, lessonID int, completed bool) (*models.LessonProgress, error)
}

// Now returns the current time as an RFC 3339 UTC string, the format used
// for EnrolledAt and CompletedAt. Timestamps stay ordering-comparable as
// plain text. Tests may swap it out.
var Now = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}
