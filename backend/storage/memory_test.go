package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecatalog/backend/models"
)

func TestIDsAssignedPerKind(t *testing.T) {
	store := NewMemStore()

	user, err := store.CreateUser(models.User{Username: "alice", Password: "pw", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	category, err := store.CreateCategory(models.Category{Name: "Go", Color: "blue"})
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)

	first, err := store.CreateCourse(models.Course{Title: "First"})
	require.NoError(t, err)
	second, err := store.CreateCourse(models.Course{Title: "Second"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestGetUserByUsername(t *testing.T) {
	store := NewMemStore()
	_, err := store.CreateUser(models.User{Username: "alice", Password: "pw", Name: "Alice"})
	require.NoError(t, err)

	user, err := store.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = store.GetUserByUsername("bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLessonsByCourseOrdering(t *testing.T) {
	store := NewMemStore()
	course, err := store.CreateCourse(models.Course{Title: "Ordering"})
	require.NoError(t, err)

	// Inserted out of order on purpose.
	for _, orderIndex := range []int{3, 1, 2} {
		_, err := store.CreateLesson(models.Lesson{CourseID: course.ID, OrderIndex: orderIndex})
		require.NoError(t, err)
	}

	lessons, err := store.GetLessonsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{lessons[0].OrderIndex, lessons[1].OrderIndex, lessons[2].OrderIndex})
}

func TestGetLessonsByCourseTiesKeepInsertionOrder(t *testing.T) {
	store := NewMemStore()
	course, err := store.CreateCourse(models.Course{Title: "Ties"})
	require.NoError(t, err)

	first, err := store.CreateLesson(models.Lesson{CourseID: course.ID, Title: "first", OrderIndex: 1})
	require.NoError(t, err)
	second, err := store.CreateLesson(models.Lesson{CourseID: course.ID, Title: "second", OrderIndex: 1})
	require.NoError(t, err)

	lessons, err := store.GetLessonsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, first.ID, lessons[0].ID)
	assert.Equal(t, second.ID, lessons[1].ID)
}

func TestCreateEnrollment(t *testing.T) {
	store := NewMemStore()
	course, err := store.CreateCourse(models.Course{Title: "Enrollable"})
	require.NoError(t, err)

	enrollment, err := store.CreateEnrollment(1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, enrollment.ID)
	assert.NotEmpty(t, enrollment.EnrolledAt)

	// Second attempt for the same pair conflicts, and the store keeps
	// exactly one record.
	_, err = store.CreateEnrollment(1, course.ID)
	assert.ErrorIs(t, err, ErrConflict)

	enrollments, err := store.GetEnrollmentsByUser(1)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestCreateEnrollmentMissingCourse(t *testing.T) {
	store := NewMemStore()

	_, err := store.CreateEnrollment(1, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	enrollments, err := store.GetEnrollmentsByUser(1)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestUpsertLessonProgress(t *testing.T) {
	store := NewMemStore()
	course, err := store.CreateCourse(models.Course{Title: "Progress"})
	require.NoError(t, err)
	lesson, err := store.CreateLesson(models.Lesson{CourseID: course.ID, OrderIndex: 1})
	require.NoError(t, err)

	record, err := store.UpsertLessonProgress(1, lesson.ID, true)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	require.NotNil(t, record.CompletedAt)

	// Unmarking clears the timestamp but keeps the record's id.
	updated, err := store.UpsertLessonProgress(1, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, record.ID, updated.ID)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpsertLessonProgressIdempotent(t *testing.T) {
	store := NewMemStore()
	course, err := store.CreateCourse(models.Course{Title: "Idempotent"})
	require.NoError(t, err)
	lesson, err := store.CreateLesson(models.Lesson{CourseID: course.ID, OrderIndex: 1})
	require.NoError(t, err)

	first, err := store.UpsertLessonProgress(1, lesson.ID, true)
	require.NoError(t, err)
	second, err := store.UpsertLessonProgress(1, lesson.ID, true)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Completed, second.Completed)
	assert.NotNil(t, second.CompletedAt)
}

func TestUpsertLessonProgressMissingLesson(t *testing.T) {
	store := NewMemStore()

	_, err := store.UpsertLessonProgress(1, 999, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLessonProgressNotFound(t *testing.T) {
	store := NewMemStore()

	_, err := store.GetLessonProgress(1, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserCourseProgressFilters(t *testing.T) {
	store := NewMemStore()
	courseA, err := store.CreateCourse(models.Course{Title: "A"})
	require.NoError(t, err)
	courseB, err := store.CreateCourse(models.Course{Title: "B"})
	require.NoError(t, err)

	lessonA, err := store.CreateLesson(models.Lesson{CourseID: courseA.ID, OrderIndex: 1})
	require.NoError(t, err)
	lessonB, err := store.CreateLesson(models.Lesson{CourseID: courseB.ID, OrderIndex: 1})
	require.NoError(t, err)

	// Records for two users and two courses; only user 1 x course A should
	// come back.
	_, err = store.UpsertLessonProgress(1, lessonA.ID, true)
	require.NoError(t, err)
	_, err = store.UpsertLessonProgress(1, lessonB.ID, true)
	require.NoError(t, err)
	_, err = store.UpsertLessonProgress(2, lessonA.ID, true)
	require.NoError(t, err)

	records, err := store.GetUserCourseProgress(1, courseA.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, lessonA.ID, records[0].LessonID)
	assert.Equal(t, 1, records[0].UserID)
}

func TestSeed(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, Seed(store))

	courses, err := store.GetCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 6)

	categories, err := store.GetCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	lessons, err := store.GetLessonsByCourse(1)
	require.NoError(t, err)
	assert.Len(t, lessons, 5)

	user, err := store.GetUserByUsername("johndoe")
	require.NoError(t, err)

	enrollments, err := store.GetEnrollmentsByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 2)
}
