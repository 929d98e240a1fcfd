// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnsweredIndex is the predicate function for answeredindex builders.
type AnsweredIndex func(*sql.Selector)

// ItemHistory is the predicate function for itemhistory builders.
type ItemHistory func(*sql.Selector)

// LessonProgress is the predicate function for lessonprogress builders.
type LessonProgress func(*sql.Selector)

// SimTaskHistory is the predicate function for simtaskhistory builders.
type SimTaskHistory func(*sql.Selector)
