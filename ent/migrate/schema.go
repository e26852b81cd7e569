// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MentorEventsColumns holds the columns for the "mentor_events" table.
	MentorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// MentorEventsTable holds the schema information for the "mentor_events" table.
	MentorEventsTable = &schema.Table{
		Name:       "mentor_events",
		Columns:    MentorEventsColumns,
		PrimaryKey: []*schema.Column{MentorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mentorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MentorEventsColumns[1]},
			},
		},
	}
	// StateSnapshotsColumns holds the columns for the "state_snapshots" table.
	StateSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeBytes},
	}
	// StateSnapshotsTable holds the schema information for the "state_snapshots" table.
	StateSnapshotsTable = &schema.Table{
		Name:       "state_snapshots",
		Columns:    StateSnapshotsColumns,
		PrimaryKey: []*schema.Column{StateSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statesnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StateSnapshotsColumns[2]},
			},
			{
				Name:    "statesnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{StateSnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MentorEventsTable,
		StateSnapshotsTable,
	}
)

func init() {
}
