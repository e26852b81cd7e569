// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MentorEvent is the predicate function for mentorevent builders.
type MentorEvent func(*sql.Selector)

// StateSnapshot is the predicate function for statesnapshot builders.
type StateSnapshot func(*sql.Selector)
