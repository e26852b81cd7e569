package catalog

// roadmaps holds the learning roadmaps referenced by roles.
var roadmaps = []Roadmap{
	{
		ID:   "WEB_APP_PENTESTER_ROADMAP",
		Name: "Web Application Pentester Roadmap",
		Phases: []Phase{
			{
				ID:             "foundations",
				Title:          "Foundations",
				Duration:       "Month 1-3",
				EstimatedHours: "100-150 hours",
				Topics: []Topic{
					{
						ID:             "networking_basics",
						Title:          "Networking Fundamentals",
						Description:    "Understand TCP/IP, DNS, HTTP/HTTPS.",
						EstimatedHours: 20,
						WhyImportant:   "Understand how web traffic flows.",
						Resources: []Resource{
							{Title: "TryHackMe: Network Fundamentals", URL: "https://tryhackme.com/room/networkfundamentals", Type: Free, Format: "Interactive Labs"},
						},
					},
					{
						ID:             "linux_fundamentals",
						Title:          "Linux Command Line",
						Description:    "Master bash and file system navigation.",
						EstimatedHours: 30,
						WhyImportant:   "Most security tools run on Linux.",
						Resources: []Resource{
							{Title: "OverTheWire: Bandit", URL: "https://overthewire.org/wargames/bandit/", Type: Free, Format: "CTF Challenges"},
						},
					},
					{
						ID:             "web_fundamentals",
						Title:          "HTTP & Web Fundamentals",
						Description:    "Learn the core of how the web works.",
						EstimatedHours: 15,
						WhyImportant:   "Essential for any web-based role.",
						Resources: []Resource{
							{Title: "PortSwigger: How The Web Works", URL: "https://portswigger.net/web-security/how-the-web-works", Type: Free, Format: "Reading"},
						},
					},
					{
						ID:             "scripting_basics",
						Title:          "HTML, CSS, JS Basics",
						Description:    "Basic understanding of frontend code.",
						EstimatedHours: 40,
						WhyImportant:   "Helps in identifying client-side vulnerabilities.",
						Resources: []Resource{
							{Title: "freeCodeCamp: Responsive Web Design", URL: "https://www.freecodecamp.org/learn/2022/responsive-web-design/", Type: Free, Format: "Course"},
						},
					},
				},
			},
			{
				ID:             "core_skills",
				Title:          "Core Skills",
				Duration:       "Month 4-8",
				EstimatedHours: "200-300 hours",
				Topics: []Topic{
					{
						ID:             "owasp_top10",
						Title:          "OWASP Top 10",
						Description:    "Master critical web vulnerabilities.",
						EstimatedHours: 80,
						Prerequisites:  []string{"web_fundamentals"},
						WhyImportant:   "This is the bread and butter of web pentesting.",
						Resources: []Resource{
							{Title: "PortSwigger Web Security Academy", URL: "https://portswigger.net/web-security", Type: Free, Format: "Labs & Reading"},
						},
					},
					{
						ID:             "burp_suite",
						Title:          "Burp Suite Mastery",
						Description:    "Learn the industry-standard tool.",
						EstimatedHours: 50,
						Prerequisites:  []string{"web_fundamentals"},
						WhyImportant:   "Your primary tool for web application testing.",
						Resources: []Resource{
							{Title: "TryHackMe: Burp Suite Rooms", URL: "https://tryhackme.com/paths", Type: Free, Format: "Labs"},
						},
					},
					{
						ID:             "manual_testing",
						Title:          "Manual Testing Methodology",
						Description:    "Develop a systematic testing process.",
						EstimatedHours: 60,
						Prerequisites:  []string{"owasp_top10"},
						WhyImportant:   "Tools find some things, manual testing finds the rest.",
						Resources: []Resource{
							{Title: "OWASP Testing Guide v4", URL: "https://owasp.org/www-project-web-security-testing-guide/v4.2/", Type: Free, Format: "Reading"},
						},
					},
				},
			},
			{
				ID:             "advanced",
				Title:          "Advanced",
				Duration:       "Month 9-12",
				EstimatedHours: "150-250 hours",
				Topics: []Topic{
					{
						ID:             "advanced_attacks",
						Title:          "Advanced Web Attacks",
						Description:    "Explore SSTI, Deserialization, XXE, SSRF.",
						EstimatedHours: 60,
						Prerequisites:  []string{"owasp_top10"},
						WhyImportant:   "Move beyond the basics to find more complex bugs.",
						Resources: []Resource{
							{Title: "PortSwigger Advanced Labs", URL: "https://portswigger.net/web-security", Type: Free, Format: "Labs"},
						},
					},
					{
						ID:             "api_security",
						Title:          "API Security Testing",
						Description:    "Learn to test modern APIs (REST, GraphQL).",
						EstimatedHours: 40,
						Prerequisites:  []string{"owasp_top10"},
						WhyImportant:   "APIs are a huge and often overlooked attack surface.",
						Resources: []Resource{
							{Title: "OWASP API Security Top 10", URL: "https://owasp.org/www-project-api-security/", Type: Free, Format: "Reading"},
						},
					},
					{
						ID:             "cert_prep",
						Title:          "Certification Prep: OSWA/BSCP",
						Description:    "Prepare for a respected industry certification.",
						EstimatedHours: 80,
						WhyImportant:   "Certs can help you get your first job.",
						Resources: []Resource{
							{Title: "OffSec Web Assessor (OSWA)", URL: "https://www.offsec.com/courses/web-200/", Type: Paid, Format: "Course"},
						},
					},
				},
			},
		},
	},
	{
		ID:   "SOC_ANALYST_ROADMAP",
		Name: "SOC Analyst Roadmap",
		Phases: []Phase{
			{
				ID:             "foundations",
				Title:          "Foundations",
				Duration:       "Month 1-3",
				EstimatedHours: "120-180 hours",
				Topics: []Topic{
					{
						ID:             "networking_basics_soc",
						Title:          "Networking Fundamentals",
						Description:    "Deep dive into TCP/IP, DNS, DHCP, and logs.",
						EstimatedHours: 40,
						WhyImportant:   "You cannot defend what you do not understand.",
						Resources: []Resource{
							{Title: "Professor Messer Network+", URL: "https://www.professormesser.com/network-plus/n10-008/n10-008-video/n10-008-training-course/", Type: Free, Format: "Video Series"},
						},
					},
					{
						ID:             "os_fundamentals",
						Title:          "OS Fundamentals (Windows/Linux)",
						Description:    "Understand operating system processes, logs, and security.",
						EstimatedHours: 50,
						WhyImportant:   "Most alerts originate from endpoints.",
						Resources: []Resource{
							{Title: "TryHackMe: Windows Fundamentals", URL: "https://tryhackme.com/module/windows-fundamentals", Type: Free, Format: "Labs"},
						},
					},
					{
						ID:             "security_plus",
						Title:          "Security+ Concepts",
						Description:    "Learn the core vocabulary and concepts of cybersecurity.",
						EstimatedHours: 40,
						WhyImportant:   "The baseline knowledge for any security role.",
						Resources: []Resource{
							{Title: "Professor Messer Security+", URL: "https://www.professormesser.com/security-plus/sy0-601/sy0-601-video/sy0-601-comptia-security-plus-course/", Type: Free, Format: "Video Series"},
						},
					},
				},
			},
			{
				ID:             "core_skills",
				Title:          "Core SOC Skills",
				Duration:       "Month 4-8",
				EstimatedHours: "200-300 hours",
				Topics: []Topic{
					{
						ID:             "siem_basics",
						Title:          "SIEM and Log Analysis",
						Description:    "Learn to use tools like Splunk or ELK to analyze logs.",
						EstimatedHours: 80,
						Prerequisites:  []string{"networking_basics_soc"},
						WhyImportant:   "The SIEM is your primary tool as a SOC analyst.",
						Resources: []Resource{
							{Title: "Splunk Free Fundamentals", URL: "https://www.splunk.com/en_us/training/free-courses/splunk-fundamentals-1.html", Type: Free, Format: "Course"},
						},
					},
					{
						ID:             "incident_response",
						Title:          "Incident Response Lifecycle",
						Description:    "Learn the PICERL framework for handling incidents.",
						EstimatedHours: 60,
						Prerequisites:  []string{"security_plus"},
						WhyImportant:   "Provides a structured way to handle security events.",
						Resources: []Resource{
							{Title: "LetsDefend.io", URL: "https://letsdefend.io/", Type: Paid, Format: "Interactive Platform"},
						},
					},
					{
						ID:             "threat_intel",
						Title:          "Cyber Threat Intelligence",
						Description:    "Understand how to use threat intel to identify threats.",
						EstimatedHours: 40,
						WhyImportant:   "Contextualizes alerts and helps in proactive defense.",
						Resources: []Resource{
							{Title: "SANS CTI YouTube Playlist", URL: "https://www.youtube.com/watch?v=g8u0I-242gE&list=PLaWqaI_B1im9ryd5k3s31p_m8a-Y27s-z", Type: Free, Format: "Video Series"},
						},
					},
				},
			},
		},
	},
	{
		ID:   "APPSEC_ENGINEER_ROADMAP",
		Name: "Application Security Engineer Roadmap",
		Phases: []Phase{
			{
				ID:             "foundations",
				Title:          "Developer Foundations",
				Duration:       "Month 1-2",
				EstimatedHours: "80-120 hours",
				Topics: []Topic{
					{
						ID:             "sdlc_basics",
						Title:          "Secure SDLC",
						Description:    "Learn how security fits into the software development lifecycle.",
						EstimatedHours: 30,
						WhyImportant:   "The core philosophy of shifting security left.",
						Resources: []Resource{
							{Title: "OWASP SAMM", URL: "https://owaspsamm.org/", Type: Free, Format: "Reading"},
						},
					},
					{
						ID:             "secure_coding",
						Title:          "Secure Coding Principles",
						Description:    "Understand principles like input validation, output encoding, least privilege.",
						EstimatedHours: 50,
						WhyImportant:   "Prevent vulnerabilities before they are written.",
						Resources: []Resource{
							{Title: "OWASP Secure Coding Practices", URL: "https://owasp.org/www-project-secure-coding-practices-quick-reference-guide/", Type: Free, Format: "Reading"},
						},
					},
				},
			},
			{
				ID:             "core_skills",
				Title:          "Core AppSec Skills",
				Duration:       "Month 3-7",
				EstimatedHours: "200-300 hours",
				Topics: []Topic{
					{
						ID:             "sast_dast",
						Title:          "SAST, DAST, and IAST",
						Description:    "Learn to use and interpret results from AppSec tools.",
						EstimatedHours: 70,
						Prerequisites:  []string{"secure_coding"},
						WhyImportant:   "Automated tooling is key to scaling AppSec.",
						Resources: []Resource{
							{Title: "SonarQube Documentation", URL: "https://docs.sonarqube.org/latest/", Type: Free, Format: "Reading"},
						},
					},
					{
						ID:             "dependency_scanning",
						Title:          "Software Composition Analysis (SCA)",
						Description:    "Find and manage vulnerabilities in third-party libraries.",
						EstimatedHours: 50,
						WhyImportant:   "You are responsible for the security of your dependencies.",
						Resources: []Resource{
							{Title: "OWASP Dependency-Check", URL: "https://owasp.org/www-project-dependency-check/", Type: Free, Format: "Tool"},
						},
					},
					{
						ID:             "threat_modeling",
						Title:          "Threat Modeling",
						Description:    "Proactively identify threats in application design.",
						EstimatedHours: 60,
						Prerequisites:  []string{"sdlc_basics"},
						WhyImportant:   "Find and fix design flaws before a line of code is written.",
						Resources: []Resource{
							{Title: "OWASP Threat Modeling Cheat Sheet", URL: "https://cheatsheetseries.owasp.org/cheatsheets/Threat_Modeling_Cheat_Sheet.html", Type: Free, Format: "Reading"},
						},
					},
				},
			},
		},
	},
}
