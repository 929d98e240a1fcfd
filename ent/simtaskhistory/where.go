// Code generated by ent, DO NOT EDIT.

package simtaskhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldUserID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldTaskID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldSection, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldTopic, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldAttempts, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldBestScore, v))
}

// LastScore applies equality check predicate on the "last_score" field. It's identical to LastScoreEQ.
func LastScore(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldLastScore, v))
}

// AvgScore applies equality check predicate on the "avg_score" field. It's identical to AvgScoreEQ.
func AvgScore(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldAvgScore, v))
}

// LastAttemptedAt applies equality check predicate on the "last_attempted_at" field. It's identical to LastAttemptedAtEQ.
func LastAttemptedAt(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// TotalTimeSpent applies equality check predicate on the "total_time_spent" field. It's identical to TotalTimeSpentEQ.
func TotalTimeSpent(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldTotalTimeSpent, v))
}

// Mastered applies equality check predicate on the "mastered" field. It's identical to MasteredEQ.
func Mastered(v bool) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldMastered, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContainsFold(FieldUserID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContainsFold(FieldTaskID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContainsFold(FieldSection, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldContainsFold(FieldTopic, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldAttempts, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldBestScore, v))
}

// LastScoreEQ applies the EQ predicate on the "last_score" field.
func LastScoreEQ(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldLastScore, v))
}

// LastScoreNEQ applies the NEQ predicate on the "last_score" field.
func LastScoreNEQ(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldLastScore, v))
}

// LastScoreIn applies the In predicate on the "last_score" field.
func LastScoreIn(vs ...float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldLastScore, vs...))
}

// LastScoreNotIn applies the NotIn predicate on the "last_score" field.
func LastScoreNotIn(vs ...float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldLastScore, vs...))
}

// LastScoreGT applies the GT predicate on the "last_score" field.
func LastScoreGT(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldLastScore, v))
}

// LastScoreGTE applies the GTE predicate on the "last_score" field.
func LastScoreGTE(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldLastScore, v))
}

// LastScoreLT applies the LT predicate on the "last_score" field.
func LastScoreLT(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldLastScore, v))
}

// LastScoreLTE applies the LTE predicate on the "last_score" field.
func LastScoreLTE(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldLastScore, v))
}

// AvgScoreEQ applies the EQ predicate on the "avg_score" field.
func AvgScoreEQ(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldAvgScore, v))
}

// AvgScoreNEQ applies the NEQ predicate on the "avg_score" field.
func AvgScoreNEQ(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldAvgScore, v))
}

// AvgScoreIn applies the In predicate on the "avg_score" field.
func AvgScoreIn(vs ...float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldAvgScore, vs...))
}

// AvgScoreNotIn applies the NotIn predicate on the "avg_score" field.
func AvgScoreNotIn(vs ...float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldAvgScore, vs...))
}

// AvgScoreGT applies the GT predicate on the "avg_score" field.
func AvgScoreGT(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldAvgScore, v))
}

// AvgScoreGTE applies the GTE predicate on the "avg_score" field.
func AvgScoreGTE(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldAvgScore, v))
}

// AvgScoreLT applies the LT predicate on the "avg_score" field.
func AvgScoreLT(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldAvgScore, v))
}

// AvgScoreLTE applies the LTE predicate on the "avg_score" field.
func AvgScoreLTE(v float64) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldAvgScore, v))
}

// LastAttemptedAtEQ applies the EQ predicate on the "last_attempted_at" field.
func LastAttemptedAtEQ(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtNEQ applies the NEQ predicate on the "last_attempted_at" field.
func LastAttemptedAtNEQ(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIn applies the In predicate on the "last_attempted_at" field.
func LastAttemptedAtIn(vs ...time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtNotIn applies the NotIn predicate on the "last_attempted_at" field.
func LastAttemptedAtNotIn(vs ...time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtGT applies the GT predicate on the "last_attempted_at" field.
func LastAttemptedAtGT(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtGTE applies the GTE predicate on the "last_attempted_at" field.
func LastAttemptedAtGTE(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLT applies the LT predicate on the "last_attempted_at" field.
func LastAttemptedAtLT(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLTE applies the LTE predicate on the "last_attempted_at" field.
func LastAttemptedAtLTE(v time.Time) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldLastAttemptedAt, v))
}

// TotalTimeSpentEQ applies the EQ predicate on the "total_time_spent" field.
func TotalTimeSpentEQ(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldTotalTimeSpent, v))
}

// TotalTimeSpentNEQ applies the NEQ predicate on the "total_time_spent" field.
func TotalTimeSpentNEQ(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldTotalTimeSpent, v))
}

// TotalTimeSpentIn applies the In predicate on the "total_time_spent" field.
func TotalTimeSpentIn(vs ...int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldIn(FieldTotalTimeSpent, vs...))
}

// TotalTimeSpentNotIn applies the NotIn predicate on the "total_time_spent" field.
func TotalTimeSpentNotIn(vs ...int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNotIn(FieldTotalTimeSpent, vs...))
}

// TotalTimeSpentGT applies the GT predicate on the "total_time_spent" field.
func TotalTimeSpentGT(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGT(FieldTotalTimeSpent, v))
}

// TotalTimeSpentGTE applies the GTE predicate on the "total_time_spent" field.
func TotalTimeSpentGTE(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldGTE(FieldTotalTimeSpent, v))
}

// TotalTimeSpentLT applies the LT predicate on the "total_time_spent" field.
func TotalTimeSpentLT(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLT(FieldTotalTimeSpent, v))
}

// TotalTimeSpentLTE applies the LTE predicate on the "total_time_spent" field.
func TotalTimeSpentLTE(v int) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldLTE(FieldTotalTimeSpent, v))
}

// MasteredEQ applies the EQ predicate on the "mastered" field.
func MasteredEQ(v bool) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldEQ(FieldMastered, v))
}

// MasteredNEQ applies the NEQ predicate on the "mastered" field.
func MasteredNEQ(v bool) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.FieldNEQ(FieldMastered, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SimTaskHistory) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SimTaskHistory) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SimTaskHistory) predicate.SimTaskHistory {
	return predicate.SimTaskHistory(sql.NotPredicates(p))
}
