package models

type Category struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Color string `json:"color" gorm:"not null"`
}

// Course references its category by id only. A dangling CategoryID is
// tolerated: consumers resolving it simply get no category back.
type Course struct {
	ID              int      `json:"id" gorm:"primaryKey"`
	Title           string   `json:"title" gorm:"not null"`
	Description     string   `json:"description" gorm:"not null"`
	FullDescription string   `json:"fullDescription" gorm:"not null"`
	Instructor      string   `json:"instructor" gorm:"not null"`
	CategoryID      int      `json:"categoryId" gorm:"not null"`
	Price           string   `json:"price" gorm:"not null"`
	Duration        string   `json:"duration" gorm:"not null"`
	Level           string   `json:"level" gorm:"not null"`
	Rating          string   `json:"rating" gorm:"not null"`
	StudentCount    string   `json:"studentCount" gorm:"not null"`
	ImageURL        string   `json:"imageUrl" gorm:"not null"`
	Features        []string `json:"features" gorm:"serializer:json"`
}

// Lesson belongs to a course. OrderIndex drives lesson numbering and
// previous/next navigation; ties fall back to insertion order.
type Lesson struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	CourseID   int    `json:"courseId" gorm:"not null"`
	Title      string `json:"title" gorm:"not null"`
	Duration   string `json:"duration" gorm:"not null"`
	VideoURL   string `json:"videoUrl"`
	Content    string `json:"content" gorm:"not null"`
	OrderIndex int    `json:"orderIndex" gorm:"not null"`
}
