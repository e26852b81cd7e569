package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MentorEvent records one mentor request for local usage statistics.
type MentorEvent struct {
	ent.Schema
}

func (MentorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now),
		field.String("provider"),
		field.String("model"),
		field.String("tier").
			Comment("fast or deep"),
		field.Int64("latency_ms"),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
	}
}

func (MentorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
