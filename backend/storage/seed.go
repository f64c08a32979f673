package storage

import "coursecatalog/backend/models"

// Seed populates a store with the demo catalog: one user, six categories,
// six courses, the lessons for the first course, two enrollments and a few
// progress records. Everything goes through the Storage interface, so it
// works the same against the memory and Postgres stores.
func Seed(s Storage) error {
	user := models.User{
		Username: "johndoe",
		Password: "password123",
		Name:     "John Doe",
	}
	if _, err := s.CreateUser(user); err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Web Development", Color: "primary"},
		{Name: "Data Science", Color: "purple"},
		{Name: "Design", Color: "pink"},
		{Name: "Marketing", Color: "orange"},
		{Name: "Mobile Development", Color: "green"},
		{Name: "Security", Color: "red"},
	}
	for _, category := range categories {
		if _, err := s.CreateCategory(category); err != nil {
			return err
		}
	}

	courses := []models.Course{
		{
			Title:           "Complete React Development",
			Description:     "Master modern React development with hooks, context, and best practices for building scalable applications.",
			FullDescription: "This comprehensive React course covers everything from fundamentals to advanced concepts. You'll learn React hooks, context API, state management, and modern development patterns. Build real-world projects and master the skills needed for professional React development.",
			Instructor:      "Sarah Johnson",
			CategoryID:      1,
			Price:           "$49",
			Duration:        "12h 30m",
			Level:           "Beginner",
			Rating:          "4.8",
			StudentCount:    "2.4k students",
			ImageURL:        "https://images.unsplash.com/photo-1633356122102-3fe601e05bd2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Features:        []string{"12.5 hours on-demand video", "15 downloadable resources", "10 coding exercises", "Certificate of completion"},
		},
		{
			Title:           "Python Data Analysis",
			Description:     "Learn data analysis, visualization, and machine learning using Python, pandas, and scikit-learn.",
			FullDescription: "Dive deep into data science with Python. This course covers data manipulation with pandas, visualization with matplotlib and seaborn, and machine learning with scikit-learn. Perfect for aspiring data scientists and analysts.",
			Instructor:      "Dr. Michael Chen",
			CategoryID:      2,
			Price:           "$69",
			Duration:        "18h 20m",
			Level:           "Intermediate",
			Rating:          "4.9",
			StudentCount:    "1.8k students",
			ImageURL:        "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Features:        []string{"18 hours on-demand video", "25 downloadable resources", "15 hands-on projects", "Certificate of completion"},
		},
		{
			Title:           "UX/UI Design Fundamentals",
			Description:     "Master user experience and interface design principles, prototyping, and design thinking methodology.",
			FullDescription: "Learn the complete UX/UI design process from research to final implementation. This course covers user research, wireframing, prototyping, visual design, and usability testing. Perfect for aspiring designers and developers.",
			Instructor:      "Emily Rodriguez",
			CategoryID:      3,
			Price:           "$59",
			Duration:        "14h 15m",
			Level:           "Beginner",
			Rating:          "4.7",
			StudentCount:    "3.1k students",
			ImageURL:        "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Features:        []string{"14 hours on-demand video", "20 downloadable resources", "8 design projects", "Certificate of completion"},
		},
		{
			Title:           "Digital Marketing Strategy",
			Description:     "Learn comprehensive digital marketing strategies including SEO, social media, and analytics.",
			FullDescription: "Master digital marketing from strategy to execution. This course covers SEO, content marketing, social media marketing, email marketing, and analytics. Learn how to create and execute successful digital marketing campaigns.",
			Instructor:      "David Thompson",
			CategoryID:      4,
			Price:           "$39",
			Duration:        "10h 45m",
			Level:           "Beginner",
			Rating:          "4.6",
			StudentCount:    "4.2k students",
			ImageURL:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Features:        []string{"10 hours on-demand video", "12 downloadable resources", "5 marketing projects", "Certificate of completion"},
		},
		{
			Title:           "React Native Development",
			Description:     "Build cross-platform mobile applications using React Native and modern development practices.",
			FullDescription: "Learn to build native mobile apps for iOS and Android using React Native. This course covers navigation, state management, API integration, and publishing to app stores.",
			Instructor:      "Alex Kim",
			CategoryID:      5,
			Price:           "$79",
			Duration:        "20h 30m",
			Level:           "Intermediate",
			Rating:          "4.8",
			StudentCount:    "1.5k students",
			ImageURL:        "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Features:        []string{"20 hours on-demand video", "30 downloadable resources", "12 mobile projects", "Certificate of completion"},
		},
		{
			Title:           "Cybersecurity Fundamentals",
			Description:     "Learn network security, ethical hacking, and threat assessment techniques.",
			FullDescription: "Comprehensive cybersecurity course covering network security, penetration testing, incident response, and security best practices. Perfect for IT professionals and security enthusiasts.",
			Instructor:      "Maria Santos",
			CategoryID:      6,
			Price:           "$89",
			Duration:        "16h 45m",
			Level:           "Intermediate",
			Rating:          "4.9",
			StudentCount:    "2.2k students",
			ImageURL:        "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Features:        []string{"16 hours on-demand video", "20 downloadable resources", "10 security labs", "Certificate of completion"},
		},
	}
	for _, course := range courses {
		if _, err := s.CreateCourse(course); err != nil {
			return err
		}
	}

	lessons := []models.Lesson{
		{
			CourseID:   1,
			Title:      "Introduction to React",
			Duration:   "15:30",
			Content:    "In this lesson, we'll explore what React is and why it's become one of the most popular JavaScript libraries for building user interfaces. React was created by Facebook and has revolutionized how we think about building web applications.",
			OrderIndex: 1,
		},
		{
			CourseID:   1,
			Title:      "Setting up Development Environment",
			Duration:   "12:15",
			Content:    "Learn how to set up your development environment for React development. We'll install Node.js, create a new React project, and explore the project structure.",
			OrderIndex: 2,
		},
		{
			CourseID:   1,
			Title:      "Understanding Components and JSX",
			Duration:   "25:45",
			Content:    "Components are the building blocks of React applications. In this lesson, we'll learn about functional and class components, and how JSX makes it easy to write component templates.",
			OrderIndex: 3,
		},
		{
			CourseID:   1,
			Title:      "State and Props",
			Duration:   "30:20",
			Content:    "Understanding state and props is crucial for React development. We'll learn how to manage component state and pass data between components using props.",
			OrderIndex: 4,
		},
		{
			CourseID:   1,
			Title:      "Event Handling",
			Duration:   "18:10",
			Content:    "Learn how to handle user interactions in React applications. We'll cover event handlers, form handling, and best practices for managing user input.",
			OrderIndex: 5,
		},
	}
	for _, lesson := range lessons {
		if _, err := s.CreateLesson(lesson); err != nil {
			return err
		}
	}

	for _, courseID := range []int{1, 2} {
		if _, err := s.CreateEnrollment(1, courseID); err != nil {
			return err
		}
	}

	// Lessons 1 and 2 done, lesson 3 started but not finished.
	seedProgress := []struct {
		lessonID  int
		completed bool
	}{
		{1, true},
		{2, true},
		{3, false},
	}
	for _, p := range seedProgress {
		if _, err := s.UpsertLessonProgress(1, p.lessonID, p.completed); err != nil {
			return err
		}
	}

	return nil
}
