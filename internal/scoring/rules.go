package scoring

import "github.com/abhisek/cyberpath/internal/catalog"

// Baseline is every role's raw score before any adjustment.
const Baseline = 50

// adjustment is a single scoring rule outcome: a delta applied to one role.
type adjustment struct {
	RoleID string
	Delta  int
}

// orientationQuestion maps the q1 answer onto role categories. A role
// whose category matches the chosen orientation gains the bonus; the
// "leadership" answer matches no category and so adjusts nothing.
const (
	orientationQuestion = "q1"
	orientationBonus    = 30
)

var orientationCategories = map[string]catalog.Category{
	"offense":     catalog.Offense,
	"defense":     catalog.Defense,
	"engineering": catalog.Engineering,
}

// inclinationQuestion (q3) rewards fixed role subsets for a coding or
// analysis inclination; "both" gives a flat bonus to every role.
const (
	inclinationQuestion  = "q3"
	inclinationBothBonus = 10
)

var inclinationRules = map[string][]adjustment{
	"coding": {
		{"appsec_engineer", 25},
		{"devsecops_engineer", 25},
		{"exploit_developer", 25},
		{"web_app_pentester", 25},
	},
	"analysis": {
		{"soc_analyst", 25},
		{"threat_hunter", 25},
		{"incident_responder", 25},
		{"malware_analyst", 25},
	},
}

// levelQuestion (q5) penalises experience-heavy roles for complete
// beginners. Other levels adjust nothing.
const levelQuestion = "q5"

var levelRules = map[string][]adjustment{
	"beginner": {
		{"exploit_developer", -20},
		{"security_architect", -20},
		{"red_team_operator", -20},
	},
}

// interestQuestion (q6) is multi-select; each chosen interest applies
// its own adjustments. Interests without an entry contribute nothing.
const interestQuestion = "q6"

var interestRules = map[string][]adjustment{
	"web_apps": {
		{"web_app_pentester", 40},
		{"appsec_engineer", 35},
		{"bug_bounty_hunter", 20},
	},
	"networks": {
		{"network_pentester", 40},
		{"soc_analyst", 30},
	},
	"cloud": {
		{"cloud_security_engineer", 40},
		{"devsecops_engineer", 20},
	},
	"malware": {
		{"malware_analyst", 40},
	},
}
