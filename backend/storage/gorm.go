package storage

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coursecatalog/backend/models"
)

// GormStore is the Postgres-backed implementation of Storage. The access
// contract is identical to MemStore; check-then-write pairs run inside a
// transaction instead of under a mutex.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm connects to Postgres and migrates the entity tables.
func OpenGorm(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.LessonProgress{},
	)
	if err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) GetUser(id int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user models.User) (*models.User, error) {
	user.ID = 0
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) GetCategory(id int) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &category, nil
}

func (s *GormStore) CreateCategory(category models.Category) (*models.Category, error) {
	category.ID = 0
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) GetCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) GetCourse(id int) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &course, nil
}

func (s *GormStore) GetCoursesByCategory(categoryID int) ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Where("category_id = ?", categoryID).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) CreateCourse(course models.Course) (*models.Course, error) {
	course.ID = 0
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) GetLessonsByCourse(courseID int) ([]models.Lesson, error) {
	var lessons []models.Lesson
	// Secondary id ordering matches the memory store's insertion-order
	// tie-break, since ids are assigned monotonically.
	err := s.db.Where("course_id = ?", courseID).Order("order_index, id").Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (s *GormStore) GetLesson(id int) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.First(&lesson, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &lesson, nil
}

func (s *GormStore) CreateLesson(lesson models.Lesson) (*models.Lesson, error) {
	lesson.ID = 0
	if err := s.db.Create(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *GormStore) GetEnrollmentsByUser(userID int) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) GetEnrollment(userID, courseID int) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &enrollment, nil
}

func (s *GormStore) CreateEnrollment(userID, courseID int) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var course models.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			return wrapNotFound(err)
		}

		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStore) GetLessonProgress(userID, lessonID int) (*models.LessonProgress, error) {
	var progress models.LessonProgress
	err := s.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &progress, nil
}

func (s *GormStore) GetUserCourseProgress(userID, courseID int) ([]models.LessonProgress, error) {
	var records []models.LessonProgress
	err := s.db.
		Where("user_id = ? AND lesson_id IN (?)",
			userID,
			s.db.Model(&models.Lesson{}).Select("id").Where("course_id = ?", courseID),
		).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) UpsertLessonProgress(userID, lessonID int, completed bool) (*models.LessonProgress, error) {
	var completedAt *string
	if completed {
		now := Now()
		completedAt = &now
	}

	var result models.LessonProgress
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lesson models.Lesson
		if err := tx.First(&lesson, lessonID).Error; err != nil {
			return wrapNotFound(err)
		}

		var existing models.LessonProgress
		err := tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&existing).Error
		if err == nil {
			existing.Completed = completed
			existing.CompletedAt = completedAt
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			result = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		result = models.LessonProgress{
			UserID:      userID,
			LessonID:    lessonID,
			Completed:   completed,
			CompletedAt: completedAt,
		}
		return tx.Create(&result).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
