package profile

var defaultProjects = []Project{
	{
		Name:         "Blue Horizon ROV",
		Description:  "An advanced Remotely Operated Vehicle (ROV) designed for underwater exploration and research. Equipped with high-definition cameras, sonar systems, and robotic arms, it enables scientists to study marine environments in detail while ensuring safety and efficiency.",
		Technologies: []string{"Raspberry Pi", "ESP32", "Arduino", "C++", "Python", "Flask", "JavaScript", "WebRTC"},
		Link:         "https://example.com/blue-horizon",
		GithubLink:   "https://github.com/arif-foysal/blue-horizon-rov",
		Image:        "/projects/blue-horizon/main.jpg",
	},
	{
		Name:         "Adventure Amigos",
		Description:  "A smart tourism web application designed to make traveling seamless and enjoyable. Adventure Amigos allows users to plan trips, book tours and accommodations, discover local businesses, and explore historical sites — all in one unified platform powered by AI-driven personalization and multilingual support.",
		Technologies: []string{"PHP", "MySQL", "JavaScript", "Vue.js", "TailwindCSS", "AI Integration"},
		Link:         "https://example.com/adventure-amigos",
		GithubLink:   "https://github.com/arif-foysal/adventure-amigos",
		Image:        "/projects/adventure-amigos.jpg",
	},
	{
		Name:         "SkinCheck AI",
		Description:  "SkinCheck AI is an intelligent skin disease detection platform that uses deep learning to classify skin lesions as benign or malignant. Trained on the HAM10000 dataset, it combines a FastAPI backend, Supabase authentication, and secure cloud deployment to deliver accurate real-time predictions from uploaded skin images.",
		Technologies: []string{"FastAPI", "Python", "Supabase", "TensorFlow", "Deep Learning", "JWT Auth"},
		Link:         "https://example.com/skincheck-ai",
		GithubLink:   "https://github.com/arif-foysal/skincheck-ai",
		Image:        "/projects/skincheck-ai.jpg",
	},
	{
		Name:         "Resumind",
		Description:  "Resumind is an AI-powered resume builder that helps users create professional, personalized, and ATS-friendly resumes in minutes. Built with Nuxt for an elegant, interactive interface and Django for scalable backend APIs, it integrates OpenAI's generative models to automatically craft job descriptions, summarize achievements, and tailor content for specific roles.",
		Technologies: []string{"Nuxt", "Django", "TailwindCSS", "LangGraph", "OpenAI API", "ChromaDB", "PostgreSQL", "JWT Auth"},
		Link:         "https://arif.it.com/projects/resumind",
		GithubLink:   "https://github.com/arif-foysal/resumind",
		Image:        "/projects/resumind.jpg",
	},
	{
		Name:         "ESP32 Vehicle Tracker",
		Description:  "ESP32 Vehicle Tracker is a real-time vehicle monitoring and control system powered by MicroPython and FastAPI. It enables live tracking, collision detection, and remote vehicle control via a cloud dashboard. The system integrates sensor data, secure cloud APIs, and a modern web interface for reliable and accessible fleet management.",
		Technologies: []string{"FastAPI", "MicroPython", "ESP32", "WebSocket", "Real-Time"},
		Link:         "https://esp32-vehicle-tracker.onrender.com",
		GithubLink:   "https://github.com/Arif-Foysal/esp32-vehicle-tracker",
		Image:        "/projects/esp32-tracker.jpg",
	},
	{
		Name:         "Portfolio Website",
		Description:  "Modern responsive portfolio website built with Nuxt 3, featuring dynamic content, interactive animations, and AI-powered chat functionality",
		Technologies: []string{"Nuxt.js", "Vue.js", "TypeScript", "Tailwind CSS", "FastAPI"},
		Link:         "https://arif.it.com",
		GithubLink:   "https://github.com/arif-foysal/portfolio",
		Image:        "/projects/portfolio.jpg",
	},
}

var defaultSkills = []SkillGroup{
	{Category: "Frontend Development", Skills: []string{"Vue.js", "Nuxt.js", "React", "Next.js", "Svelte", "TypeScript", "JavaScript", "TailwindCSS", "HTML5", "Markdown"}},
	{Category: "Backend Development", Skills: []string{"Python", "Django", "FastAPI", "Flask", "Next.js", "Nuxt.js", "PHP", "Laravel", "Express", "GraphQL", "REST API"}},
	{Category: "Mobile Development", Skills: []string{"React Native", "NestJS", "Appwrite"}},
	{Category: "Database & Storage", Skills: []string{"PostgreSQL", "MongoDB", "Redis", "Prisma", "MySQL", "SQLite", "Supabase", "Firebase"}},
	{Category: "DevOps & Cloud", Skills: []string{"Docker", "Kubernetes", "AWS", "GitHub", "GitLab", "Jenkins", "Nginx", "Linux"}},
	{Category: "AI & Machine Learning", Skills: []string{"TensorFlow", "PyTorch", "LangChain", "OpenAI", "Hugging Face", "scikit-learn", "CUDA", "Jupyter"}},
	{Category: "Testing & API Tools", Skills: []string{"Postman", "Curl", "Swagger", "Pytest"}},
	{Category: "Tools & Others", Skills: []string{"Git", "VS Code", "MicroPython", "Arduino", "Vim", "Bash", "WebRTC"}},
}

var defaultEducation = []Education{
	{
		Institution: "United International University (UIU)",
		Degree:      "Bachelor of Science",
		Field:       "Computer Science and Engineering",
		Year:        "2020-2025",
		Description: "Specialized in Software Engineering.",
	},
	{
		Institution: "Tech Academy",
		Degree:      "Certificate",
		Field:       "Full Stack Web Development",
		Year:        "2022",
		Description: "Intensive bootcamp covering modern web development technologies",
	},
}

var defaultExperience = []Experience{
	{
		Company:      "Amar Fuel",
		Position:     "Software Engineer",
		Duration:     "2023 - Present",
		Description:  "Developing backend and automation systems at AmarFuel — a startup pioneering Bangladesh's first self-service fuel station solution using IoT and cloud technologies",
		Technologies: []string{"Python", "FastAPI", "IoT", "PostgreSQL"},
	},
	{
		Company:      "Fiverr",
		Position:     "Full Stack Developer (Freelance)",
		Duration:     "2024 - Present",
		Description:  "Delivered full-stack web solutions for global clients, building responsive interfaces and scalable backend systems to meet diverse business needs",
		Technologies: []string{"Vue.js", "Nuxt.js", "Python", "FastAPI", "Firebase", "PostgreSQL"},
	},
}

var defaultAchievements = []Achievement{
	{
		Title:       "Finalist – National Project Showcase, UIU CSE Fest",
		Description: "Selected as a finalist in the national-level project showcase at UIU CSE Fest — recognized among top student innovators for presenting a solution-driven tech project demonstrating strong concept, execution and real-world relevance.",
		Date:        "2024",
		Link:        "https://example.com/uiu-cse-fest",
	},
	{
		Title:       "Champion - UIU CSE Project Show, Fall 2023",
		Description: "Won first place in the UIU CSE Project Show Fall 2023 for outstanding project innovation and technical excellence",
		Date:        "2023",
		Link:        "https://example.com/uiu-champion",
	},
	{
		Title:       "Finalist - National Project Showcase, Inventious 4.1, MIST",
		Description: "Selected as finalist in the national-level project showcase at Inventious 4.1, MIST for innovative technology solution",
		Date:        "2024",
		Link:        "https://example.com/inventious-mist",
	},
	{
		Title:       "Finalist - National Project Showcase, Hult Prize Bangladesh 2025",
		Description: "Recognized as finalist in Hult Prize Bangladesh 2025 for social entrepreneurship and innovative business solution",
		Date:        "2024",
		Link:        "https://example.com/hult-prize",
	},
	{
		Title:       "Google IT Support Professional Certificate",
		Description: "Completed Google IT Support Professional Certificate program, demonstrating proficiency in troubleshooting, customer service, networking, operating systems, system administration and security",
		Date:        "2024",
		Link:        "https://example.com/google-cert",
	},
}

var defaultContact = Contact{
	Email:    "ariffaysal.nayem@gmail.com",
	LinkedIn: "https://linkedin.com/in/arif-foysal",
	GitHub:   "https://github.com/arif-foysal",
	Website:  "https://arif.it.com",
}

var defaultPersonal = PersonalInfo{
	Name:              "Arif Foysal",
	Title:             "Full Stack Developer & AI Enthusiast",
	Location:          "Bangladesh",
	Bio:               "Passionate software developer with expertise in full-stack web development and artificial intelligence. I love building innovative solutions that solve real-world problems.",
	YearsOfExperience: 3,
	Specialization:    []string{"Web Development", "AI/ML", "Mobile Apps"},
}
