package catalog

// questions is the fixed questionnaire, asked in declaration order.
var questions = []Question{
	{
		ID:          "q1",
		Title:       "Offense or Defense?",
		Description: "This is the fundamental split. Do you enjoy breaking things to find weaknesses (Offense), or building and defending systems against attackers (Defense)? Engineering focuses on creating secure systems, while leadership involves strategy and management.",
		Type:        Single,
		Options: []Option{
			{Value: "offense", Label: "Offense (Pentest/Red Team)"},
			{Value: "defense", Label: "Defense (SOC/Blue Team)"},
			{Value: "engineering", Label: "Engineering/Architecture"},
			{Value: "leadership", Label: "Leadership/Strategy"},
		},
	},
	{
		ID:          "q2",
		Title:       "Math & Stats Comfort?",
		Description: "Some specialized fields like cryptography and AI/ML security rely on strong mathematical concepts. Don't worry, most roles don't require advanced math, but this helps us pinpoint niche interests.",
		Type:        Single,
		Options: []Option{
			{Value: "strong", Label: "Strong (algebra/calculus)"},
			{Value: "some", Label: "Some comfort"},
			{Value: "low", Label: "Not really"},
		},
	},
	{
		ID:          "q3",
		Title:       "Coding vs Analysis?",
		Description: "Are you more drawn to writing scripts and building tools (Coding), or piecing together clues from logs and data to uncover a story (Analysis)? Many roles involve both, but this reveals your primary inclination.",
		Type:        Single,
		Options: []Option{
			{Value: "coding", Label: "Coding/Building"},
			{Value: "analysis", Label: "Analysis/Investigation"},
			{Value: "both", Label: "Both equally"},
		},
	},
	{
		ID:          "q4",
		Title:       "Leadership Interest?",
		Description: "Do you see yourself managing teams, budgets, and strategy in the long run (Leadership), or becoming a deep technical expert in a specific domain (Individual Contributor)?",
		Type:        Single,
		Options: []Option{
			{Value: "yes", Label: "Yes - leadership track"},
			{Value: "no", Label: "No - individual contributor"},
			{Value: "maybe", Label: "Maybe in the future"},
		},
	},
	{
		ID:          "q5",
		Title:       "Current Technical Level?",
		Description: "This helps us tailor the starting point of your roadmap. Be honest about your background so we can recommend the right foundational skills without overwhelming you.",
		Type:        Single,
		Options: []Option{
			{Value: "beginner", Label: "Complete beginner (no IT)"},
			{Value: "some_it", Label: "Some IT background"},
			{Value: "developer", Label: "Developer switching to security"},
			{Value: "advancing", Label: "Security pro advancing"},
		},
	},
	{
		ID:          "q6",
		Title:       "Primary Interest Area?",
		Description: "Cybersecurity is vast! Where do you want to focus your skills? You can pick multiple areas. This is one of the most important factors in determining your ideal role.",
		Type:        Multiple,
		Options: []Option{
			{Value: "web_apps", Label: "Web Applications"},
			{Value: "networks", Label: "Networks & Infrastructure"},
			{Value: "cloud", Label: "Cloud (AWS/Azure)"},
			{Value: "mobile", Label: "Mobile Apps"},
			{Value: "osint", Label: "Social Engineering/OSINT"},
			{Value: "malware", Label: "Malware & Reverse Engineering"},
		},
	},
	{
		ID:          "q7",
		Title:       "Programming Experience?",
		Description: "From simple automation scripts to full-blown application development, your coding skill level opens up different career paths, especially in AppSec and DevSecOps.",
		Type:        Single,
		Options: []Option{
			{Value: "none", Label: "None"},
			{Value: "scripting", Label: "Basic scripting (Bash/PS)"},
			{Value: "proficient", Label: "Proficient in 1-2 languages"},
			{Value: "developer", Label: "Software developer"},
		},
	},
	{
		ID:          "q8",
		Title:       "Weekly Time Commitment?",
		Description: "This doesn't affect your role recommendation, but it helps us adjust the timeline of your learning roadmap to be realistic for your schedule.",
		Type:        Single,
		Options: []Option{
			{Value: "5_10", Label: "5-10 hours"},
			{Value: "10_20", Label: "10-20 hours"},
			{Value: "20_plus", Label: "20+ hours"},
		},
	},
	{
		ID:          "q9",
		Title:       "Preferred Learning Style?",
		Description: "How do you learn best? By doing (Hands-on), watching (Videos), or reading? We'll use this to suggest the most effective resources for you.",
		Type:        Single,
		Options: []Option{
			{Value: "hands_on", Label: "Hands-on labs (CTFs)"},
			{Value: "video", Label: "Video tutorials & courses"},
			{Value: "reading", Label: "Reading (books/blogs)"},
			{Value: "mixed", Label: "Mixed approach"},
		},
	},
	{
		ID:          "q10",
		Title:       "Career Goal Timeline?",
		Description: "What's your motivation? Are you casually exploring, or on a mission to land a job? This helps set the pace and intensity of the recommended roadmap.",
		Type:        Single,
		Options: []Option{
			{Value: "casual", Label: "Exploring casually"},
			{Value: "6_12_months", Label: "Job-ready in 6-12 months"},
			{Value: "1_2_years", Label: "Job-ready in 1-2 years"},
		},
	},
}
