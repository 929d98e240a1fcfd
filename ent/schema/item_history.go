package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemHistory tracks a learner's answer history for a single practice item.
// One row per (user, item); merged in place on every answer.
type ItemHistory struct {
	ent.Schema
}

func (ItemHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.String("section").
			NotEmpty().
			Comment("Exam section the item belongs to (far, aud, reg)"),
		field.String("topic").
			Comment("Topic tag carried from the question bank"),
		field.Int("times_answered").
			NonNegative(),
		field.Int("times_correct").
			NonNegative(),
		field.Time("last_answered_at"),
		field.Bool("last_correct"),
		field.String("mastery_level").
			Comment("learning, reviewing, or mastered; recomputed on every write"),
		field.Time("next_review_at").
			Comment("Spaced repetition due time"),
	}
}

func (ItemHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "item_id").Unique(),
		index.Fields("user_id", "section"),
		index.Fields("next_review_at"),
	}
}
