package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateSnapshot stores one persisted copy of the application envelope.
// The latest row is authoritative; older rows are pruned.
type StateSnapshot struct {
	ent.Schema
}

func (StateSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Monotonic save counter within this database"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.Bytes("data").
			Comment("Snapshot envelope JSON, verbatim"),
	}
}

func (StateSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
