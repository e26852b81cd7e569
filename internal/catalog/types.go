package catalog

// QuestionType distinguishes single-select from multi-select questions.
type QuestionType string

const (
	Single   QuestionType = "single"
	Multiple QuestionType = "multiple"
)

// Option is one selectable answer to a question.
type Option struct {
	Value string
	Label string
}

// Question is one questionnaire entry. Immutable seed data.
type Question struct {
	ID          string
	Title       string
	Description string
	Type        QuestionType
	Options     []Option
}

// Category groups roles by broad career orientation.
type Category string

const (
	Offense     Category = "offense"
	Defense     Category = "defense"
	Engineering Category = "engineering"
	Specialized Category = "specialized"
)

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{Offense, Defense, Engineering, Specialized}
}

// Role is one career path. Immutable seed data.
type Role struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	SalaryRange    string   `json:"salaryRange"`
	KeySkills      []string `json:"keySkills"`
	Certifications []string `json:"certifications"`
	RoadmapID      string   `json:"roadmapId"`
}

// ResourceType marks a learning resource as free or paid.
type ResourceType string

const (
	Free ResourceType = "FREE"
	Paid ResourceType = "PAID"
)

// Resource is one learning resource attached to a topic.
type Resource struct {
	Title  string
	URL    string
	Type   ResourceType
	Format string
}

// Topic is an atomic learning unit. Topic IDs are unique within a roadmap.
type Topic struct {
	ID             string
	Title          string
	Description    string
	EstimatedHours int
	Prerequisites  []string
	WhyImportant   string
	Resources      []Resource
}

// Phase is an ordered grouping of topics within a roadmap.
type Phase struct {
	ID             string
	Title          string
	Duration       string
	EstimatedHours string
	Topics         []Topic
}

// Roadmap is an ordered sequence of phases for one career track.
type Roadmap struct {
	ID     string
	Name   string
	Phases []Phase
}

// Topics returns all topics of the roadmap in declaration order.
func (r Roadmap) Topics() []Topic {
	var out []Topic
	for _, p := range r.Phases {
		out = append(out, p.Topics...)
	}
	return out
}

// TopicCount returns the number of topics across all phases.
func (r Roadmap) TopicCount() int {
	n := 0
	for _, p := range r.Phases {
		n += len(p.Topics)
	}
	return n
}
