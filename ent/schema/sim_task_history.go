package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SimTaskHistory tracks attempts at a task-based simulation.
// One row per (user, task); merged in place on every attempt.
type SimTaskHistory struct {
	ent.Schema
}

func (SimTaskHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("task_id").
			NotEmpty(),
		field.String("section").
			NotEmpty(),
		field.String("topic"),
		field.Int("attempts").
			NonNegative(),
		field.Float("best_score"),
		field.Float("last_score"),
		field.Float("avg_score").
			Comment("Running mean over all attempts"),
		field.Time("last_attempted_at"),
		field.Int("total_time_spent").
			NonNegative().
			Comment("Seconds across all attempts"),
		field.Bool("mastered").
			Comment("True once best_score reaches the task mastery bar"),
	}
}

func (SimTaskHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "task_id").Unique(),
		index.Fields("user_id", "section"),
	}
}
