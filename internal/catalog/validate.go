package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the given seed data.
// Returns a combined error describing all problems found, or nil if valid.
func validate(qs []Question, rs []Role, rms []Roadmap) error {
	var errs []string

	// Questions: unique IDs, non-empty option sets, unique option values.
	qIDs := make(map[string]bool, len(qs))
	for _, q := range qs {
		if qIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		qIDs[q.ID] = true

		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
		}
		values := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if values[opt.Value] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option value %q", q.ID, opt.Value))
			}
			values[opt.Value] = true
		}
		if q.Type != Single && q.Type != Multiple {
			errs = append(errs, fmt.Sprintf("question %q has unknown type %q", q.ID, q.Type))
		}
	}

	// Roadmaps: unique IDs, per-roadmap topic checks.
	rmIDs := make(map[string]bool, len(rms))
	for _, rm := range rms {
		if rmIDs[rm.ID] {
			errs = append(errs, fmt.Sprintf("duplicate roadmap ID: %q", rm.ID))
		}
		rmIDs[rm.ID] = true
		errs = append(errs, validateRoadmap(rm)...)
	}

	// Roles: unique IDs, known category, existing roadmap reference.
	categories := make(map[Category]bool)
	for _, cat := range AllCategories() {
		categories[cat] = true
	}
	roleIDs := make(map[string]bool, len(rs))
	for _, r := range rs {
		if roleIDs[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate role ID: %q", r.ID))
		}
		roleIDs[r.ID] = true
		if !categories[r.Category] {
			errs = append(errs, fmt.Sprintf("role %q has unknown category %q", r.ID, r.Category))
		}
		if !rmIDs[r.RoadmapID] {
			errs = append(errs, fmt.Sprintf("role %q references nonexistent roadmap %q", r.ID, r.RoadmapID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateRoadmap checks one roadmap: unique topic IDs, no dangling
// prerequisites, no prerequisite cycles, and at least one topic with
// no prerequisites so the suggestion scan always has an entry point.
func validateRoadmap(rm Roadmap) []string {
	var errs []string
	topics := rm.Topics()

	topicIDs := make(map[string]bool, len(topics))
	for _, t := range topics {
		if topicIDs[t.ID] {
			errs = append(errs, fmt.Sprintf("roadmap %q has duplicate topic ID %q", rm.ID, t.ID))
		}
		topicIDs[t.ID] = true
		if t.EstimatedHours < 0 {
			errs = append(errs, fmt.Sprintf("roadmap %q topic %q has negative estimated hours", rm.ID, t.ID))
		}
	}

	for _, t := range topics {
		for _, prereqID := range t.Prerequisites {
			if !topicIDs[prereqID] {
				errs = append(errs, fmt.Sprintf("roadmap %q topic %q references nonexistent prerequisite %q", rm.ID, t.ID, prereqID))
			}
		}
	}

	// Cycle detection using Kahn's algorithm.
	inDegree := make(map[string]int, len(topics))
	dependents := make(map[string][]string)
	for _, t := range topics {
		inDegree[t.ID] = len(t.Prerequisites)
		for _, prereqID := range t.Prerequisites {
			dependents[prereqID] = append(dependents[prereqID], t.ID)
		}
	}

	var queue []string
	for _, t := range topics {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(topics) {
		var cycleNodes []string
		for _, t := range topics {
			if inDegree[t.ID] > 0 {
				cycleNodes = append(cycleNodes, t.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("roadmap %q has a prerequisite cycle involving: %s", rm.ID, strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, t := range topics {
		if len(t.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(topics) > 0 && !hasRoot {
		errs = append(errs, fmt.Sprintf("roadmap %q has no topic without prerequisites", rm.ID))
	}

	return errs
}
