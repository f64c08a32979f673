package storage

import (
	"sort"
	"sync"

	"coursecatalog/backend/models"
)

// MemStore keeps every entity in a map keyed by id and hands out ids from
// per-kind counters starting at 1. Ids are never reused. All lookups by
// anything other than id are linear scans; the dataset is small and the
// store is not meant to outlive the process.
//
// A single mutex guards every operation, so the existence checks inside
// CreateEnrollment and UpsertLessonProgress are atomic with their writes.
type MemStore struct {
	mu sync.Mutex

	users          map[int]models.User
	categories     map[int]models.Category
	courses        map[int]models.Course
	lessons        map[int]models.Lesson
	enrollments    map[int]models.Enrollment
	lessonProgress map[int]models.LessonProgress

	nextUserID       int
	nextCategoryID   int
	nextCourseID     int
	nextLessonID     int
	nextEnrollmentID int
	nextProgressID   int
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:            make(map[int]models.User),
		categories:       make(map[int]models.Category),
		courses:          make(map[int]models.Course),
		lessons:          make(map[int]models.Lesson),
		enrollments:      make(map[int]models.Enrollment),
		lessonProgress:   make(map[int]models.LessonProgress),
		nextUserID:       1,
		nextCategoryID:   1,
		nextCourseID:     1,
		nextLessonID:     1,
		nextEnrollmentID: 1,
		nextProgressID:   1,
	}
}

func (s *MemStore) GetUser(id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemStore) GetCategories() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemStore) GetCategory(id int) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemStore) CreateCategory(category models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[category.ID] = category
	return &category, nil
}

func (s *MemStore) GetCourses() ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemStore) GetCourse(id int) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &course, nil
}

func (s *MemStore) GetCoursesByCategory(categoryID int) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var courses []models.Course
	for _, course := range s.courses {
		if course.CategoryID == categoryID {
			courses = append(courses, course)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemStore) CreateCourse(course models.Course) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = s.nextCourseID
	s.nextCourseID++
	s.courses[course.ID] = course
	return &course, nil
}

func (s *MemStore) GetLessonsByCourse(courseID int) ([]models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lessonsByCourseLocked(courseID), nil
}

// lessonsByCourseLocked filters by course and sorts by orderIndex. Ids are
// monotonic, so sorting by id first makes the stable orderIndex sort fall
// back to insertion order on ties.
func (s *MemStore) lessonsByCourseLocked(courseID int) []models.Lesson {
	var lessons []models.Lesson
	for _, lesson := range s.lessons {
		if lesson.CourseID == courseID {
			lessons = append(lessons, lesson)
		}
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].OrderIndex < lessons[j].OrderIndex })
	return lessons
}

func (s *MemStore) GetLesson(id int) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok := s.lessons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &lesson, nil
}

func (s *MemStore) CreateLesson(lesson models.Lesson) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson.ID = s.nextLessonID
	s.nextLessonID++
	s.lessons[lesson.ID] = lesson
	return &lesson, nil
}

func (s *MemStore) GetEnrollmentsByUser(userID int) ([]models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var enrollments []models.Enrollment
	for _, enrollment := range s.enrollments {
		if enrollment.UserID == userID {
			enrollments = append(enrollments, enrollment)
		}
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

func (s *MemStore) GetEnrollment(userID, courseID int) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enrollment := s.enrollmentLocked(userID, courseID); enrollment != nil {
		return enrollment, nil
	}
	return nil, ErrNotFound
}

func (s *MemStore) enrollmentLocked(userID, courseID int) *models.Enrollment {
	for _, enrollment := range s.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			e := enrollment
			return &e
		}
	}
	return nil
}

func (s *MemStore) CreateEnrollment(userID, courseID int) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enrollmentLocked(userID, courseID) != nil {
		return nil, ErrConflict
	}
	if _, ok := s.courses[courseID]; !ok {
		return nil, ErrNotFound
	}

	enrollment := models.Enrollment{
		ID:         s.nextEnrollmentID,
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: Now(),
	}
	s.nextEnrollmentID++
	s.enrollments[enrollment.ID] = enrollment
	return &enrollment, nil
}

func (s *MemStore) GetLessonProgress(userID, lessonID int) (*models.LessonProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if progress := s.lessonProgressLocked(userID, lessonID); progress != nil {
		return progress, nil
	}
	return nil, ErrNotFound
}

func (s *MemStore) lessonProgressLocked(userID, lessonID int) *models.LessonProgress {
	for _, progress := range s.lessonProgress {
		if progress.UserID == userID && progress.LessonID == lessonID {
			p := progress
			return &p
		}
	}
	return nil
}

func (s *MemStore) GetUserCourseProgress(userID, courseID int) ([]models.LessonProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lessonIDs := make(map[int]bool)
	for _, lesson := range s.lessonsByCourseLocked(courseID) {
		lessonIDs[lesson.ID] = true
	}

	var records []models.LessonProgress
	for _, progress := range s.lessonProgress {
		if progress.UserID == userID && lessonIDs[progress.LessonID] {
			records = append(records, progress)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *MemStore) UpsertLessonProgress(userID, lessonID int, completed bool) (*models.LessonProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lessons[lessonID]; !ok {
		return nil, ErrNotFound
	}

	var completedAt *string
	if completed {
		now := Now()
		completedAt = &now
	}

	if existing := s.lessonProgressLocked(userID, lessonID); existing != nil {
		existing.Completed = completed
		existing.CompletedAt = completedAt
		s.lessonProgress[existing.ID] = *existing
		return existing, nil
	}

	progress := models.LessonProgress{
		ID:          s.nextProgressID,
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   completed,
		CompletedAt: completedAt,
	}
	s.nextProgressID++
	s.lessonProgress[progress.ID] = progress
	return &progress, nil
}
