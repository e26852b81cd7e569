// Package mentor implements the AI mentor chat: prompt construction
// from the student's profile and roadmap position, a transcript model,
// and a streaming ask loop with one request in flight at a time.
package mentor

import (
	"fmt"
	"strings"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/progress"
)

// PromptContext is everything the prompt builder draws on. Role and
// Topic may be nil; the question is then sent without framing.
type PromptContext struct {
	Role     *catalog.Role
	Topic    *catalog.Topic
	Answers  *answers.Set
	Progress progress.Log
}

// BuildPrompt frames a student question with role, profile, and
// roadmap context. Without a role and topic the question passes
// through untouched.
func BuildPrompt(ctx PromptContext, question string) string {
	if ctx.Role == nil || ctx.Topic == nil {
		return question
	}

	var completed int
	var hours float64
	for _, rec := range ctx.Progress {
		if rec.Completed {
			completed++
		}
		hours += rec.HoursLogged
	}

	level := "unknown"
	style := "unknown"
	interests := "none listed"
	if ctx.Answers != nil {
		if v, ok := ctx.Answers.Single("q5"); ok {
			level = v
		}
		if v, ok := ctx.Answers.Single("q9"); ok {
			style = v
		}
		if vs := ctx.Answers.Multi("q6"); len(vs) > 0 {
			interests = strings.Join(vs, ", ")
		}
	}

	prereqs := "None"
	if len(ctx.Topic.Prerequisites) > 0 {
		prereqs = strings.Join(ctx.Topic.Prerequisites, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a cybersecurity mentor helping a student learn to become a %s.\n\n", ctx.Role.Name)
	b.WriteString("Student Profile:\n")
	fmt.Fprintf(&b, "- Current Level: %s\n", level)
	fmt.Fprintf(&b, "- Primary Interests: %s\n", interests)
	fmt.Fprintf(&b, "- Learning Style: %s\n", style)
	fmt.Fprintf(&b, "- Progress: %d topics completed, %g hours logged\n\n", completed, hours)
	fmt.Fprintf(&b, "Current Topic: %s\n", ctx.Topic.Title)
	fmt.Fprintf(&b, "- Description: %s\n", ctx.Topic.Description)
	fmt.Fprintf(&b, "- Prerequisites: %s\n", prereqs)
	fmt.Fprintf(&b, "- Estimated Time: %d hours\n\n", ctx.Topic.EstimatedHours)
	b.WriteString("Provide beginner-friendly, actionable advice. Include specific free resource recommendations when relevant. Keep responses concise and use markdown for formatting.\n\n")
	fmt.Fprintf(&b, "Student Question: %q", question)
	return b.String()
}

// QuickAction is a canned question template about the current topic.
type QuickAction string

const (
	ActionExplain   QuickAction = "explain"
	ActionResources QuickAction = "resources"
	ActionPlan      QuickAction = "plan"
	ActionQuiz      QuickAction = "quiz"
)

// QuickActions lists the actions in display order.
var QuickActions = []QuickAction{ActionExplain, ActionResources, ActionPlan, ActionQuiz}

// Label returns the button text for the action.
func (a QuickAction) Label() string {
	switch a {
	case ActionExplain:
		return "Explain Simply"
	case ActionResources:
		return "Free Resources"
	case ActionPlan:
		return "Study Plan"
	case ActionQuiz:
		return "Quiz Me"
	}
	return string(a)
}

// Question expands the action into a question about the topic.
func (a QuickAction) Question(topicTitle string) string {
	switch a {
	case ActionExplain:
		return fmt.Sprintf("Explain the topic %q in simple terms.", topicTitle)
	case ActionResources:
		return fmt.Sprintf("What are the best free resources for learning about %q?", topicTitle)
	case ActionPlan:
		return fmt.Sprintf("Give me a mini study plan for %q.", topicTitle)
	case ActionQuiz:
		return fmt.Sprintf("Quiz me on %q with one multiple choice question.", topicTitle)
	}
	return ""
}
