package provider

import "github.com/fadilmartias/careervision/internal/model"

var linkedInTemplates = []Candidate{
	{
		ID:           "linkedin_job_1",
		Source:       model.SourceLinkedIn,
		Kind:         model.RecommendationJob,
		Title:        "Senior Software Engineer",
		Company:      "Tech Corp",
		Location:     "San Francisco, CA",
		Description:  "We are looking for a senior software engineer with expertise in React, Node.js, and cloud technologies.",
		URL:          "https://linkedin.com/jobs/1",
		JobType:      "full-time",
		Salary:       &Salary{Min: 120000, Max: 180000, Currency: "USD"},
		Requirements: []string{"5+ years experience", "React", "Node.js", "AWS"},
		Skills:       []string{"javascript", "react", "node.js", "aws"},
		Tags:         []string{"remote", "tech", "startup"},
	},
	{
		ID:           "linkedin_job_2",
		Source:       model.SourceLinkedIn,
		Kind:         model.RecommendationJob,
		Title:        "Full Stack Developer",
		Company:      "StartupXYZ",
		Location:     "New York, NY",
		Description:  "Join our growing team as a full stack developer. Work with modern technologies and build scalable applications.",
		URL:          "https://linkedin.com/jobs/2",
		JobType:      "full-time",
		Salary:       &Salary{Min: 90000, Max: 130000, Currency: "USD"},
		Requirements: []string{"3+ years experience", "JavaScript", "Python", "Database design"},
		Skills:       []string{"javascript", "python", "mongodb", "react"},
		Tags:         []string{"startup", "growth", "equity"},
	},
}

var indeedTemplates = []Candidate{
	{
		ID:           "indeed_job_1",
		Source:       model.SourceIndeed,
		Kind:         model.RecommendationJob,
		Title:        "Frontend Developer",
		Company:      "Digital Agency",
		Location:     "Remote",
		Description:  "Looking for a talented frontend developer to join our team. Experience with React and modern CSS required.",
		URL:          "https://indeed.com/jobs/1",
		JobType:      "full-time",
		Salary:       &Salary{Min: 75000, Max: 110000, Currency: "USD"},
		Requirements: []string{"React", "CSS", "JavaScript", "Responsive design"},
		Skills:       []string{"react", "css", "javascript", "html"},
		Tags:         []string{"remote", "frontend", "agency"},
	},
	{
		ID:           "indeed_job_2",
		Source:       model.SourceIndeed,
		Kind:         model.RecommendationJob,
		Title:        "DevOps Engineer",
		Company:      "Cloud Solutions Inc",
		Location:     "Austin, TX",
		Description:  "Seeking a DevOps engineer with experience in AWS, Docker, and Kubernetes.",
		URL:          "https://indeed.com/jobs/2",
		JobType:      "full-time",
		Salary:       &Salary{Min: 100000, Max: 140000, Currency: "USD"},
		Requirements: []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
		Skills:       []string{"aws", "docker", "kubernetes", "jenkins"},
		Tags:         []string{"devops", "cloud", "infrastructure"},
	},
}

var unstopTemplates = []Candidate{
	{
		ID:           "unstop_job_1",
		Source:       model.SourceUnstop,
		Kind:         model.RecommendationJob,
		Title:        "Software Development Intern",
		Company:      "TechStart",
		Location:     "Bangalore, India",
		Description:  "Internship opportunity for students and recent graduates. Work on real projects with mentorship.",
		URL:          "https://unstop.com/jobs/1",
		JobType:      "internship",
		Salary:       &Salary{Min: 20000, Max: 40000, Currency: "INR"},
		Requirements: []string{"Programming basics", "Eagerness to learn", "Team player"},
		Skills:       []string{"programming", "java", "python"},
		Tags:         []string{"internship", "entry-level", "mentorship"},
	},
	{
		ID:           "unstop_job_2",
		Source:       model.SourceUnstop,
		Kind:         model.RecommendationJob,
		Title:        "Junior Data Analyst",
		Company:      "DataCorp",
		Location:     "Mumbai, India",
		Description:  "Entry-level position for data enthusiasts. Work with SQL, Python, and visualization tools.",
		URL:          "https://unstop.com/jobs/2",
		JobType:      "full-time",
		Salary:       &Salary{Min: 400000, Max: 600000, Currency: "INR"},
		Requirements: []string{"SQL", "Python", "Data visualization", "Statistical knowledge"},
		Skills:       []string{"sql", "python", "excel", "statistics"},
		Tags:         []string{"data", "analytics", "entry-level"},
	},
}

var courseraTemplates = []Candidate{
	{
		ID:          "coursera_course_1",
		Source:      model.SourceCoursera,
		Kind:        model.RecommendationCourse,
		Title:       "Advanced React Development",
		Provider:    "Coursera",
		Instructor:  "John Doe, Meta",
		Description: "Master advanced React concepts including hooks, context, and performance optimization.",
		URL:         "https://coursera.org/course/1",
		Duration:    "6 weeks",
		Level:       model.LevelAdvanced,
		Price:       &Price{Amount: 49, Currency: "USD"},
		Rating:      &Rating{Score: 4.8, Count: 1200},
		Skills:      []string{"react", "javascript", "web development"},
		Tags:        []string{"frontend", "react", "advanced"},
	},
	{
		ID:          "coursera_course_2",
		Source:      model.SourceCoursera,
		Kind:        model.RecommendationCourse,
		Title:       "Machine Learning for Everyone",
		Provider:    "Coursera",
		Instructor:  "Dr. Jane Smith, Stanford",
		Description: "Introduction to machine learning concepts and practical applications.",
		URL:         "https://coursera.org/course/2",
		Duration:    "8 weeks",
		Level:       model.LevelBeginner,
		Price:       &Price{Amount: 0, Currency: "USD", Free: true},
		Rating:      &Rating{Score: 4.6, Count: 2500},
		Skills:      []string{"machine learning", "python", "data science"},
		Tags:        []string{"ai", "ml", "beginner"},
	},
	{
		ID:          "coursera_course_3",
		Source:      model.SourceCoursera,
		Kind:        model.RecommendationCourse,
		Title:       "Cloud Computing with AWS",
		Provider:    "Coursera",
		Instructor:  "AWS Team",
		Description: "Learn to deploy and manage applications on Amazon Web Services.",
		URL:         "https://coursera.org/course/3",
		Duration:    "10 weeks",
		Level:       model.LevelIntermediate,
		Price:       &Price{Amount: 79, Currency: "USD"},
		Rating:      &Rating{Score: 4.7, Count: 1800},
		Skills:      []string{"aws", "cloud computing", "devops"},
		Tags:        []string{"cloud", "aws", "infrastructure"},
	},
}

var udemyTemplates = []Candidate{
	{
		ID:          "udemy_course_1",
		Source:      model.SourceUdemy,
		Kind:        model.RecommendationCourse,
		Title:       "Complete JavaScript Bootcamp",
		Provider:    "Udemy",
		Instructor:  "Jonas Schmedtmann",
		Description: "Master JavaScript from scratch with projects, challenges, and real-world examples.",
		URL:         "https://udemy.com/course/1",
		Duration:    "69 hours",
		Level:       model.LevelBeginner,
		Price:       &Price{Amount: 89.99, Currency: "USD"},
		Rating:      &Rating{Score: 4.9, Count: 15000},
		Skills:      []string{"javascript", "web development", "programming"},
		Tags:        []string{"javascript", "bootcamp", "comprehensive"},
	},
	{
		ID:          "udemy_course_2",
		Source:      model.SourceUdemy,
		Kind:        model.RecommendationCourse,
		Title:       "Docker and Kubernetes Complete Guide",
		Provider:    "Udemy",
		Instructor:  "Stephen Grider",
		Description: "Build, test, and deploy Docker applications with Kubernetes.",
		URL:         "https://udemy.com/course/2",
		Duration:    "21.5 hours",
		Level:       model.LevelIntermediate,
		Price:       &Price{Amount: 84.99, Currency: "USD"},
		Rating:      &Rating{Score: 4.8, Count: 8500},
		Skills:      []string{"docker", "kubernetes", "devops"},
		Tags:        []string{"devops", "containerization", "orchestration"},
	},
	{
		ID:          "udemy_course_3",
		Source:      model.SourceUdemy,
		Kind:        model.RecommendationCourse,
		Title:       "Python for Data Science and Machine Learning",
		Provider:    "Udemy",
		Instructor:  "Jose Portilla",
		Description: "Learn Python for data analysis, visualization, and machine learning.",
		URL:         "https://udemy.com/course/3",
		Duration:    "25 hours",
		Level:       model.LevelBeginner,
		Price:       &Price{Amount: 94.99, Currency: "USD"},
		Rating:      &Rating{Score: 4.7, Count: 12000},
		Skills:      []string{"python", "data science", "machine learning"},
		Tags:        []string{"python", "data", "ml"},
	},
}

var edxTemplates = []Candidate{
	{
		ID:          "edx_course_1",
		Source:      model.SourceEdX,
		Kind:        model.RecommendationCourse,
		Title:       "Computer Science Fundamentals",
		Provider:    "edX",
		Instructor:  "MIT Faculty",
		Description: "Introduction to computer science and programming using Python.",
		URL:         "https://edx.org/course/1",
		Duration:    "12 weeks",
		Level:       model.LevelBeginner,
		Price:       &Price{Amount: 0, Currency: "USD", Free: true},
		Rating:      &Rating{Score: 4.5, Count: 5000},
		Skills:      []string{"computer science", "python", "algorithms"},
		Tags:        []string{"cs", "fundamentals", "free"},
	},
	{
		ID:          "edx_course_2",
		Source:      model.SourceEdX,
		Kind:        model.RecommendationCourse,
		Title:       "Artificial Intelligence",
		Provider:    "edX",
		Instructor:  "Harvard University",
		Description: "Explore the theory and application of artificial intelligence.",
		URL:         "https://edx.org/course/2",
		Duration:    "16 weeks",
		Level:       model.LevelAdvanced,
		Price:       &Price{Amount: 150, Currency: "USD"},
		Rating:      &Rating{Score: 4.8, Count: 3200},
		Skills:      []string{"artificial intelligence", "machine learning", "algorithms"},
		Tags:        []string{"ai", "harvard", "advanced"},
	},
	{
		ID:          "edx_course_3",
		Source:      model.SourceEdX,
		Kind:        model.RecommendationCourse,
		Title:       "Web Development with React",
		Provider:    "edX",
		Instructor:  "University of Pennsylvania",
		Description: "Build modern web applications using React and related technologies.",
		URL:         "https://edx.org/course/3",
		Duration:    "8 weeks",
		Level:       model.LevelIntermediate,
		Price:       &Price{Amount: 99, Currency: "USD"},
		Rating:      &Rating{Score: 4.6, Count: 2800},
		Skills:      []string{"react", "web development", "javascript"},
		Tags:        []string{"react", "web", "frontend"},
	},
}
