package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnsweredIndex is a per-(user, section) document listing every item ID the
// user has ever answered there. Kept so fresh-pool exclusion doesn't need a
// per-item scan.
type AnsweredIndex struct {
	ent.Schema
}

func (AnsweredIndex) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("section").
			NotEmpty(),
		field.JSON("item_ids", []string{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (AnsweredIndex) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "section").Unique(),
	}
}
