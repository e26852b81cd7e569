// Package catalog holds the static reference data: the questionnaire,
// the role database, and the learning roadmaps. The data is immutable
// and validated once at process start.
package catalog

import (
	"fmt"
	"slices"
)

// store holds the seed data with precomputed indices.
type store struct {
	questions   []Question
	roles       []Role
	roadmaps    []Roadmap
	questionIDs map[string]*Question
	roleIDs     map[string]*Role
	roadmapIDs  map[string]*Roadmap
	topicTitles map[string]map[string]string // roadmap ID -> topic ID -> title
}

// c is the package-level catalog singleton.
var c *store

func init() {
	c = buildStore(questions, roles, roadmaps)
	if err := Validate(); err != nil {
		panic(err)
	}
}

func buildStore(qs []Question, rs []Role, rms []Roadmap) *store {
	st := &store{
		questions:   qs,
		roles:       rs,
		roadmaps:    rms,
		questionIDs: make(map[string]*Question, len(qs)),
		roleIDs:     make(map[string]*Role, len(rs)),
		roadmapIDs:  make(map[string]*Roadmap, len(rms)),
		topicTitles: make(map[string]map[string]string, len(rms)),
	}
	for i := range st.questions {
		st.questionIDs[st.questions[i].ID] = &st.questions[i]
	}
	for i := range st.roles {
		st.roleIDs[st.roles[i].ID] = &st.roles[i]
	}
	for i := range st.roadmaps {
		rm := &st.roadmaps[i]
		st.roadmapIDs[rm.ID] = rm
		titles := make(map[string]string, rm.TopicCount())
		for _, t := range rm.Topics() {
			titles[t.ID] = t.Title
		}
		st.topicTitles[rm.ID] = titles
	}
	return st
}

// Questions returns all questions in questionnaire order.
func Questions() []Question {
	return slices.Clone(c.questions)
}

// QuestionByID returns a question by ID, or an error if not found.
func QuestionByID(id string) (Question, error) {
	q, ok := c.questionIDs[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// Roles returns all roles in catalog order.
func Roles() []Role {
	return slices.Clone(c.roles)
}

// RoleByID returns a role by ID, or an error if not found.
func RoleByID(id string) (Role, error) {
	r, ok := c.roleIDs[id]
	if !ok {
		return Role{}, fmt.Errorf("role not found: %q", id)
	}
	return *r, nil
}

// Roadmaps returns all roadmaps.
func Roadmaps() []Roadmap {
	return slices.Clone(c.roadmaps)
}

// RoadmapByID returns a roadmap by ID, or an error if not found.
func RoadmapByID(id string) (Roadmap, error) {
	rm, ok := c.roadmapIDs[id]
	if !ok {
		return Roadmap{}, fmt.Errorf("roadmap not found: %q", id)
	}
	return *rm, nil
}

// RoadmapForRole returns the roadmap referenced by the given role.
func RoadmapForRole(role Role) (Roadmap, error) {
	return RoadmapByID(role.RoadmapID)
}

// TopicTitle returns the display title of a topic within a roadmap.
// Falls back to the raw topic ID when unknown, so renderers never
// show an empty string for a dangling reference.
func TopicTitle(roadmapID, topicID string) string {
	if titles, ok := c.topicTitles[roadmapID]; ok {
		if title, ok := titles[topicID]; ok {
			return title
		}
	}
	return topicID
}

// Validate checks the seed data for structural issues.
func Validate() error {
	return validate(c.questions, c.roles, c.roadmaps)
}
