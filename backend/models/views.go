package models

// Response shapes assembled by the request layer. None of these are stored;
// progress figures are recomputed on every query.

// CourseWithLessons is a course joined with its lessons in order.
type CourseWithLessons struct {
	Course
	Lessons []Lesson `json:"lessons"`
}

// LessonWithProgress annotates a lesson with one user's completion state.
type LessonWithProgress struct {
	Lesson
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
}

// EnrollmentWithProgress is an enrollment joined with course details and the
// computed completion percentage.
type EnrollmentWithProgress struct {
	Enrollment
	Course           *Course `json:"course"`
	Progress         int     `json:"progress"`
	CompletedLessons int     `json:"completedLessons"`
	TotalLessons     int     `json:"totalLessons"`
}

// CourseProgress is the per-course progress view for one user.
type CourseProgress struct {
	Lessons          []LessonWithProgress `json:"lessons"`
	Progress         int                  `json:"progress"`
	CompletedLessons int                  `json:"completedLessons"`
	TotalLessons     int                  `json:"totalLessons"`
}

// LessonDetail is a lesson joined with its course and its orderIndex
// neighbors for viewer navigation.
type LessonDetail struct {
	Lesson
	Course         *Course `json:"course"`
	PreviousLesson *Lesson `json:"previousLesson"`
	NextLesson     *Lesson `json:"nextLesson"`
}
