package portfolio

import "github.com/Zachkp/portfolio-dashboard/internal/activity"

var (
	About = []string{
		`I'm a computer science student who loves building user-friendly applications that solve
	real-world problems, from data platforms for public services to everyday web tools.`,
		`My journey in software development has led me to work on diverse projects ranging from
	machine learning systems to full-stack web apps, always exploring new technologies to
	sharpen my skillset.`,
	}

	DefaultProfile = Profile{
		Name:     "Aakash Yadav",
		Title:    "Full-Stack Developer & ML Enthusiast",
		Location: "Dwarka, New Delhi",
		Image:    "/images/profile.jpg",
		About:    About,
		Tags:     []string{"Full-Stack Developer", "ML Enthusiast", "Problem Solver"},
		CurrentFocus: []string{
			"Mastering advanced web technologies and frameworks",
			"Building ML-powered applications for social impact",
			"Improving data structures & algorithms proficiency",
			"Contributing to open-source projects",
		},
		QuickFacts: []string{
			"4 shipped projects",
			"87 contributions since Nov 2024",
			"Comfortable across frontend, backend and data",
			"Open to internships and collaborations",
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/TechieAakash"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/techieaakash"},
			{Label: "Email", URL: "mailto:techieaakash@example.com"},
		},
		Milestones: []string{
			"Nov 2024: Account Created",
			"Nov: Recipe Finder App (22 commits)",
			"Dec: Smart Parking System (37 commits)",
			"Jan 2026: ALRIS Project (28 commits)",
		},
	}

	Projects = []Project{
		{
			ID:          1,
			Name:        "ALRIS",
			Category:    "Data Intelligence",
			Status:      StatusCompleted,
			Progress:    100,
			Tech:        []string{"Python", "Flask", "ML", "MySQL"},
			Color:       "purple",
			Description: "Aadhaar Linked Regional Intelligence System, an ML-powered platform to assess service gaps and optimize resource allocation.",
			Challenge:   "Enrolment centres were spread unevenly and nobody could see where demand outpaced capacity.",
			Solution:    "Regional demand models trained on enrolment data, surfaced in a dashboard with gap scores per district.",
			Impact:      "Highlights under-served regions so new centres can be planned where they matter most.",
			GitHub:      "https://github.com/TechieAakash/Aadhaar-Linked-Regional-Intelligence-System",
			Demo:        "https://aadhaar-linked-regional-intelligence-tlpw.onrender.com",
		},
		{
			ID:          2,
			Name:        "Smart Parking System",
			Category:    "Full Stack",
			Status:      StatusCompleted,
			Progress:    100,
			Tech:        []string{"Node.js", "Express", "MySQL", "Sequelize"},
			Color:       "blue",
			Description: "Full-stack parking management with real-time tracking, violation auto-detection, and contractor limit enforcement for smart cities.",
			Challenge:   "Contractors routinely exceeded their allotted capacity and violations were logged by hand.",
			Solution:    "Slot-level occupancy tracking with automatic violation detection and per-contractor limits.",
			Impact:      "Violations are flagged the moment they happen instead of at the end of the week.",
			GitHub:      "https://github.com/TechieAakash/SmartParking-Project",
			Demo:        "https://smartparking-project-2.onrender.com",
		},
		{
			ID:          3,
			Name:        "Recipe Finder App",
			Category:    "Web Development",
			Status:      StatusCompleted,
			Progress:    100,
			Tech:        []string{"Flask", "JavaScript", "MySQL"},
			Color:       "green",
			Description: "Web app for discovering 20+ Indian recipes with real-time search, responsive design, and UI animations.",
			Challenge:   "Recipe sites bury the ingredients list under pages of unrelated content.",
			Solution:    "A searchable catalog with instant filtering by dish and ingredient.",
			Impact:      "Find a recipe by what is already in the kitchen in a couple of keystrokes.",
			GitHub:      "https://github.com/TechieAakash/recipeFinderApp",
		},
		{
			ID:          4,
			Name:        "Currency Converter",
			Category:    "Web App",
			Status:      StatusCompleted,
			Progress:    100,
			Tech:        []string{"HTML", "CSS", "JavaScript"},
			Color:       "orange",
			Description: "Simple and elegant currency converter with real-time exchange rates and a clean user interface.",
			Challenge:   "First project: learning to consume a public API from the browser.",
			Solution:    "Plain HTML, CSS and JavaScript calling a public exchange-rate endpoint.",
			Impact:      "The starting point for everything that followed.",
			GitHub:      "https://github.com/TechieAakash/My-first-project",
		},
	}

	Skills = []Skill{
		{Name: "HTML/CSS", Level: 90, Category: "Frontend"},
		{Name: "JavaScript", Level: 85, Category: "Frontend"},
		{Name: "React", Level: 80, Category: "Frontend"},
		{Name: "Node.js/Express", Level: 85, Category: "Backend"},
		{Name: "Python/Flask", Level: 82, Category: "Backend"},
		{Name: "MySQL", Level: 80, Category: "Database"},
		{Name: "Java", Level: 75, Category: "Language"},
		{Name: "C++/DSA", Level: 78, Category: "Language"},
	}

	SkillCategories = []string{"Frontend", "Backend", "DevOps", "Database"}

	// Activity runs Jan..Dec; Jan is the current year, Nov and Dec the previous one.
	Activity = []activity.Month{
		{Month: "Jan", Commits: 28, PullRequests: 6},
		{Month: "Feb"},
		{Month: "Mar"},
		{Month: "Apr"},
		{Month: "May"},
		{Month: "Jun"},
		{Month: "Jul"},
		{Month: "Aug"},
		{Month: "Sep"},
		{Month: "Oct"},
		{Month: "Nov", Commits: 22, PullRequests: 5},
		{Month: "Dec", Commits: 37, PullRequests: 8},
	}
)

// DefaultTargets are the counter targets before any live data arrives.
func DefaultTargets() map[string]int {
	return map[string]int{
		"projects":      len(Projects),
		"commits":       87,
		"stars":         2,
		"contributions": 87,
	}
}
