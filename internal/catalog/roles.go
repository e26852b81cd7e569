package catalog

// roles is the fixed role database, in display order.
var roles = []Role{
	{
		ID:             "web_app_pentester",
		Name:           "Web Application Pentester",
		Category:       Offense,
		Description:    "Tests web apps for vulnerabilities (XSS, SQLi, auth bypass).",
		SalaryRange:    "$70k-120k",
		KeySkills:      []string{"Burp Suite", "OWASP Top 10", "Manual Testing"},
		Certifications: []string{"OSWA", "BSCP", "OSWE"},
		RoadmapID:      "WEB_APP_PENTESTER_ROADMAP",
	},
	{
		ID:             "network_pentester",
		Name:           "Network Pentester",
		Category:       Offense,
		Description:    "Assesses network infrastructure, firewalls, and VPNs.",
		SalaryRange:    "$80k-130k",
		KeySkills:      []string{"Nmap", "Metasploit", "Protocol Analysis"},
		Certifications: []string{"OSCP", "PNPT", "eJPT"},
		RoadmapID:      "WEB_APP_PENTESTER_ROADMAP",
	},
	{
		ID:             "red_team_operator",
		Name:           "Red Team Operator",
		Category:       Offense,
		Description:    "Simulates real-world attacks, targeting the full kill chain.",
		SalaryRange:    "$100k-160k",
		KeySkills:      []string{"C2 Frameworks", "Evasion", "Active Directory"},
		Certifications: []string{"CRTO", "OSEP"},
		RoadmapID:      "WEB_APP_PENTESTER_ROADMAP",
	},
	{
		ID:             "bug_bounty_hunter",
		Name:           "Bug Bounty Hunter",
		Category:       Offense,
		Description:    "Freelance vulnerability discovery on platforms like HackerOne.",
		SalaryRange:    "Varies",
		KeySkills:      []string{"Wide Attack Surface", "Automation", "Recon"},
		Certifications: []string{"OSCP (helps)"},
		RoadmapID:      "WEB_APP_PENTESTER_ROADMAP",
	},
	{
		ID:             "soc_analyst",
		Name:           "SOC Analyst",
		Category:       Defense,
		Description:    "Monitors SIEM, triages alerts, and hunts for threats.",
		SalaryRange:    "$60k-100k",
		KeySkills:      []string{"Splunk/ELK", "Log Analysis", "Incident Triage"},
		Certifications: []string{"Security+", "CySA+", "BTL1"},
		RoadmapID:      "SOC_ANALYST_ROADMAP",
	},
	{
		ID:             "incident_responder",
		Name:           "Incident Responder",
		Category:       Defense,
		Description:    "Investigates breaches, performs containment and remediation.",
		SalaryRange:    "$85k-140k",
		KeySkills:      []string{"Forensics", "Malware Triage", "IR Playbooks"},
		Certifications: []string{"GCIH", "ECIR"},
		RoadmapID:      "SOC_ANALYST_ROADMAP",
	},
	{
		ID:             "threat_hunter",
		Name:           "Threat Hunter",
		Category:       Defense,
		Description:    "Proactively searches for undetected threats within networks.",
		SalaryRange:    "$90k-150k",
		KeySkills:      []string{"Threat Intel", "Anomaly Detection", "EDR"},
		Certifications: []string{"GCTI", "GCIA"},
		RoadmapID:      "SOC_ANALYST_ROADMAP",
	},
	{
		ID:             "appsec_engineer",
		Name:           "AppSec Engineer",
		Category:       Engineering,
		Description:    "Focuses on secure SDLC, code review, and SAST/DAST tooling.",
		SalaryRange:    "$110k-170k",
		KeySkills:      []string{"Secure Coding", "Dependency Scanning", "DevSecOps"},
		Certifications: []string{"CSSLP", "GWAPT"},
		RoadmapID:      "APPSEC_ENGINEER_ROADMAP",
	},
	{
		ID:             "cloud_security_engineer",
		Name:           "Cloud Security Engineer",
		Category:       Engineering,
		Description:    "Secures cloud infrastructure (AWS/Azure/GCP).",
		SalaryRange:    "$120k-180k",
		KeySkills:      []string{"IAM", "CloudTrail", "GuardDuty", "Compliance"},
		Certifications: []string{"AWS Security", "Azure Security"},
		RoadmapID:      "APPSEC_ENGINEER_ROADMAP",
	},
	{
		ID:             "devsecops_engineer",
		Name:           "DevSecOps Engineer",
		Category:       Engineering,
		Description:    "Secures CI/CD pipelines, IaC, and containers.",
		SalaryRange:    "$125k-190k",
		KeySkills:      []string{"Docker", "Kubernetes", "Terraform"},
		Certifications: []string{"Kubernetes Security"},
		RoadmapID:      "APPSEC_ENGINEER_ROADMAP",
	},
	{
		ID:             "security_architect",
		Name:           "Security Architect",
		Category:       Engineering,
		Description:    "Designs enterprise security architecture and strategy.",
		SalaryRange:    "$140k-220k",
		KeySkills:      []string{"Zero Trust", "Risk Modeling", "Strategy"},
		Certifications: []string{"CISSP", "SABSA"},
		RoadmapID:      "APPSEC_ENGINEER_ROADMAP",
	},
	{
		ID:             "malware_analyst",
		Name:           "Malware Analyst",
		Category:       Specialized,
		Description:    "Reverse engineers malicious code to understand its function.",
		SalaryRange:    "$95k-155k",
		KeySkills:      []string{"IDA Pro", "Ghidra", "x86 Assembly"},
		Certifications: []string{"GREM", "GIAC"},
		RoadmapID:      "SOC_ANALYST_ROADMAP",
	},
	{
		ID:             "exploit_developer",
		Name:           "Exploit Developer",
		Category:       Specialized,
		Description:    "Writes exploits for vulnerabilities.",
		SalaryRange:    "$130k-250k+",
		KeySkills:      []string{"C/C++", "Memory Corruption", "Shellcode"},
		Certifications: []string{"OSED", "OSEE"},
		RoadmapID:      "WEB_APP_PENTESTER_ROADMAP",
	},
}
