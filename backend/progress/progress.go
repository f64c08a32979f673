// Package progress derives per-course and per-lesson completion state from
// raw progress records. Everything here is a pure function over storage
// query results; nothing is cached or written back.
package progress

import (
	"math"

	"coursecatalog/backend/models"
)

// Percentage returns the rounded completion percentage for completed out of
// total lessons, rounding half up. A course with no lessons is 0% complete.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// CompletedCount counts the records marked completed.
func CompletedCount(records []models.LessonProgress) int {
	count := 0
	for _, record := range records {
		if record.Completed {
			count++
		}
	}
	return count
}

// Summarize computes the progress figures for one user's view of a course.
func Summarize(lessons []models.Lesson, records []models.LessonProgress) (percentage, completed, total int) {
	completed = CompletedCount(records)
	total = len(lessons)
	return Percentage(completed, total), completed, total
}

// AnnotateLessons merges a user's progress records onto an ordered lesson
// list. Lessons without a record come back incomplete with a nil timestamp.
func AnnotateLessons(lessons []models.Lesson, records []models.LessonProgress) []models.LessonWithProgress {
	byLesson := make(map[int]models.LessonProgress, len(records))
	for _, record := range records {
		byLesson[record.LessonID] = record
	}

	annotated := make([]models.LessonWithProgress, 0, len(lessons))
	for _, lesson := range lessons {
		entry := models.LessonWithProgress{Lesson: lesson}
		if record, ok := byLesson[lesson.ID]; ok {
			entry.Completed = record.Completed
			entry.CompletedAt = record.CompletedAt
		}
		annotated = append(annotated, entry)
	}
	return annotated
}

// Neighbors returns the lessons immediately before and after lessonID in
// orderIndex order. Either is nil at a boundary, and both are nil when the
// lesson is not in the list.
func Neighbors(lessons []models.Lesson, lessonID int) (previous, next *models.Lesson) {
	for i := range lessons {
		if lessons[i].ID != lessonID {
			continue
		}
		if i > 0 {
			previous = &lessons[i-1]
		}
		if i < len(lessons)-1 {
			next = &lessons[i+1]
		}
		return previous, next
	}
	return nil, nil
}
