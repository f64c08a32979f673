package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecatalog/backend/models"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, 0))
	assert.Equal(t, 0, Percentage(0, 5))
	assert.Equal(t, 40, Percentage(2, 5))
	assert.Equal(t, 100, Percentage(5, 5))

	// Half rounds up.
	assert.Equal(t, 13, Percentage(1, 8))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
}

func TestCompletedCount(t *testing.T) {
	records := []models.LessonProgress{
		{LessonID: 1, Completed: true},
		{LessonID: 2, Completed: true},
		{LessonID: 3, Completed: false},
	}
	assert.Equal(t, 2, CompletedCount(records))
	assert.Equal(t, 0, CompletedCount(nil))
}

func TestSummarize(t *testing.T) {
	lessons := []models.Lesson{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	records := []models.LessonProgress{
		{LessonID: 1, Completed: true},
		{LessonID: 2, Completed: true},
		{LessonID: 3, Completed: false},
	}

	percentage, completed, total := Summarize(lessons, records)
	assert.Equal(t, 40, percentage)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 5, total)
}

func TestAnnotateLessons(t *testing.T) {
	completedAt := "2024-01-15T10:00:00Z"
	lessons := []models.Lesson{{ID: 1}, {ID: 2}, {ID: 3}}
	records := []models.LessonProgress{
		{LessonID: 1, Completed: true, CompletedAt: &completedAt},
		{LessonID: 2, Completed: false},
	}

	annotated := AnnotateLessons(lessons, records)
	require.Len(t, annotated, 3)

	assert.True(t, annotated[0].Completed)
	require.NotNil(t, annotated[0].CompletedAt)
	assert.Equal(t, completedAt, *annotated[0].CompletedAt)

	assert.False(t, annotated[1].Completed)
	assert.Nil(t, annotated[1].CompletedAt)

	// No record at all behaves like an incomplete one.
	assert.False(t, annotated[2].Completed)
	assert.Nil(t, annotated[2].CompletedAt)
}

func TestNeighbors(t *testing.T) {
	lessons := []models.Lesson{{ID: 10}, {ID: 20}, {ID: 30}}

	previous, next := Neighbors(lessons, 20)
	require.NotNil(t, previous)
	require.NotNil(t, next)
	assert.Equal(t, 10, previous.ID)
	assert.Equal(t, 30, next.ID)

	previous, next = Neighbors(lessons, 10)
	assert.Nil(t, previous)
	require.NotNil(t, next)
	assert.Equal(t, 20, next.ID)

	previous, next = Neighbors(lessons, 30)
	require.NotNil(t, previous)
	assert.Equal(t, 20, previous.ID)
	assert.Nil(t, next)

	previous, next = Neighbors(lessons, 99)
	assert.Nil(t, previous)
	assert.Nil(t, next)
}
