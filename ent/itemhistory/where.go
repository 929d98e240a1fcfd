// Code generated by ent, DO NOT EDIT.

package itemhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldUserID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldItemID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldSection, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldTopic, v))
}

// TimesAnswered applies equality check predicate on the "times_answered" field. It's identical to TimesAnsweredEQ.
func TimesAnswered(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldTimesAnswered, v))
}

// TimesCorrect applies equality check predicate on the "times_correct" field. It's identical to TimesCorrectEQ.
func TimesCorrect(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldTimesCorrect, v))
}

// LastAnsweredAt applies equality check predicate on the "last_answered_at" field. It's identical to LastAnsweredAtEQ.
func LastAnsweredAt(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldLastAnsweredAt, v))
}

// LastCorrect applies equality check predicate on the "last_correct" field. It's identical to LastCorrectEQ.
func LastCorrect(v bool) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldLastCorrect, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldMasteryLevel, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldNextReviewAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContainsFold(FieldUserID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContainsFold(FieldItemID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContainsFold(FieldSection, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContainsFold(FieldTopic, v))
}

// TimesAnsweredEQ applies the EQ predicate on the "times_answered" field.
func TimesAnsweredEQ(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldTimesAnswered, v))
}

// TimesAnsweredNEQ applies the NEQ predicate on the "times_answered" field.
func TimesAnsweredNEQ(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldTimesAnswered, v))
}

// TimesAnsweredIn applies the In predicate on the "times_answered" field.
func TimesAnsweredIn(vs ...int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldTimesAnswered, vs...))
}

// TimesAnsweredNotIn applies the NotIn predicate on the "times_answered" field.
func TimesAnsweredNotIn(vs ...int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldTimesAnswered, vs...))
}

// TimesAnsweredGT applies the GT predicate on the "times_answered" field.
func TimesAnsweredGT(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldTimesAnswered, v))
}

// TimesAnsweredGTE applies the GTE predicate on the "times_answered" field.
func TimesAnsweredGTE(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldTimesAnswered, v))
}

// TimesAnsweredLT applies the LT predicate on the "times_answered" field.
func TimesAnsweredLT(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldTimesAnswered, v))
}

// TimesAnsweredLTE applies the LTE predicate on the "times_answered" field.
func TimesAnsweredLTE(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldTimesAnswered, v))
}

// TimesCorrectEQ applies the EQ predicate on the "times_correct" field.
func TimesCorrectEQ(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldTimesCorrect, v))
}

// TimesCorrectNEQ applies the NEQ predicate on the "times_correct" field.
func TimesCorrectNEQ(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldTimesCorrect, v))
}

// TimesCorrectIn applies the In predicate on the "times_correct" field.
func TimesCorrectIn(vs ...int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldTimesCorrect, vs...))
}

// TimesCorrectNotIn applies the NotIn predicate on the "times_correct" field.
func TimesCorrectNotIn(vs ...int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldTimesCorrect, vs...))
}

// TimesCorrectGT applies the GT predicate on the "times_correct" field.
func TimesCorrectGT(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldTimesCorrect, v))
}

// TimesCorrectGTE applies the GTE predicate on the "times_correct" field.
func TimesCorrectGTE(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldTimesCorrect, v))
}

// TimesCorrectLT applies the LT predicate on the "times_correct" field.
func TimesCorrectLT(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldTimesCorrect, v))
}

// TimesCorrectLTE applies the LTE predicate on the "times_correct" field.
func TimesCorrectLTE(v int) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldTimesCorrect, v))
}

// LastAnsweredAtEQ applies the EQ predicate on the "last_answered_at" field.
func LastAnsweredAtEQ(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldLastAnsweredAt, v))
}

// LastAnsweredAtNEQ applies the NEQ predicate on the "last_answered_at" field.
func LastAnsweredAtNEQ(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldLastAnsweredAt, v))
}

// LastAnsweredAtIn applies the In predicate on the "last_answered_at" field.
func LastAnsweredAtIn(vs ...time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldLastAnsweredAt, vs...))
}

// LastAnsweredAtNotIn applies the NotIn predicate on the "last_answered_at" field.
func LastAnsweredAtNotIn(vs ...time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldLastAnsweredAt, vs...))
}

// LastAnsweredAtGT applies the GT predicate on the "last_answered_at" field.
func LastAnsweredAtGT(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldLastAnsweredAt, v))
}

// LastAnsweredAtGTE applies the GTE predicate on the "last_answered_at" field.
func LastAnsweredAtGTE(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldLastAnsweredAt, v))
}

// LastAnsweredAtLT applies the LT predicate on the "last_answered_at" field.
func LastAnsweredAtLT(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldLastAnsweredAt, v))
}

// LastAnsweredAtLTE applies the LTE predicate on the "last_answered_at" field.
func LastAnsweredAtLTE(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldLastAnsweredAt, v))
}

// LastCorrectEQ applies the EQ predicate on the "last_correct" field.
func LastCorrectEQ(v bool) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldLastCorrect, v))
}

// LastCorrectNEQ applies the NEQ predicate on the "last_correct" field.
func LastCorrectNEQ(v bool) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldLastCorrect, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.ItemHistory {
	return predicate.ItemHistory(sql.FieldLTE(FieldNextReviewAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemHistory) predicate.ItemHistory {
	return predicate.ItemHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemHistory) predicate.ItemHistory {
	return predicate.ItemHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemHistory) predicate.ItemHistory {
	return predicate.ItemHistory(sql.NotPredicates(p))
}
