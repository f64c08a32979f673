package models

// Enrollment links a user to a course. At most one record may exist per
// (UserID, CourseID) pair; the storage layer rejects duplicates.
type Enrollment struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	UserID     int    `json:"userId" gorm:"not null"`
	CourseID   int    `json:"courseId" gorm:"not null"`
	EnrolledAt string `json:"enrolledAt" gorm:"not null"`
}

// LessonProgress is the only mutable entity: repeated submissions for the
// same (UserID, LessonID) pair update the record in place, preserving its id.
// CompletedAt is non-nil exactly when Completed is true.
type LessonProgress struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	UserID      int     `json:"userId" gorm:"not null"`
	LessonID    int     `json:"lessonId" gorm:"not null"`
	Completed   bool    `json:"completed" gorm:"not null;default:false"`
	CompletedAt *string `json:"completedAt"`
}

// TableName keeps the table aligned with the historical schema name.
func (LessonProgress) TableName() string {
	return "lesson_progress"
}
