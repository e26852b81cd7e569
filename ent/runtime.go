// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cyberpath/ent/mentorevent"
	"github.com/abhisek/cyberpath/ent/schema"
	"github.com/abhisek/cyberpath/ent/statesnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	mentoreventFields := schema.MentorEvent{}.Fields()
	_ = mentoreventFields
	// mentoreventDescTimestamp is the schema descriptor for timestamp field.
	mentoreventDescTimestamp := mentoreventFields[0].Descriptor()
	// mentorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mentorevent.DefaultTimestamp = mentoreventDescTimestamp.Default.(func() time.Time)
	statesnapshotFields := schema.StateSnapshot{}.Fields()
	_ = statesnapshotFields
	// statesnapshotDescTimestamp is the schema descriptor for timestamp field.
	statesnapshotDescTimestamp := statesnapshotFields[1].Descriptor()
	// statesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	statesnapshot.DefaultTimestamp = statesnapshotDescTimestamp.Default.(func() time.Time)
}
