// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/lessonprogress"
	"github.com/studymesh/cpaprep/ent/predicate"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnsweredIndex  = "AnsweredIndex"
	TypeItemHistory    = "ItemHistory"
	TypeLessonProgress = "LessonProgress"
	TypeSimTaskHistory = "SimTaskHistory"
)

// AnsweredIndexMutation represents an operation that mutates the AnsweredIndex nodes in the graph.
type AnsweredIndexMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *string
	section        *string
	item_ids       *[]string
	appenditem_ids []string
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AnsweredIndex, error)
	predicates     []predicate.AnsweredIndex
}

var _ ent.Mutation = (*AnsweredIndexMutation)(nil)

// answeredindexOption allows management of the mutation configuration using functional options.
type answeredindexOption func(*AnsweredIndexMutation)

// newAnsweredIndexMutation creates new mutation for the AnsweredIndex entity.
func newAnsweredIndexMutation(c config, op Op, opts ...answeredindexOption) *AnsweredIndexMutation {
	m := &AnsweredIndexMutation{
		config:        c,
		op:            op,
		typ:           TypeAnsweredIndex,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnsweredIndexID sets the ID field of the mutation.
func withAnsweredIndexID(id int) answeredindexOption {
	return func(m *AnsweredIndexMutation) {
		var (
			err   error
			once  sync.Once
			value *AnsweredIndex
		)
		m.oldValue = func(ctx context.Context) (*AnsweredIndex, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnsweredIndex.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnsweredIndex sets the old AnsweredIndex of the mutation.
func withAnsweredIndex(node *AnsweredIndex) answeredindexOption {
	return func(m *AnsweredIndexMutation) {
		m.oldValue = func(context.Context) (*AnsweredIndex, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnsweredIndexMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnsweredIndexMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnsweredIndexMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnsweredIndexMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnsweredIndex.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnsweredIndexMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnsweredIndexMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnsweredIndex entity.
// If the AnsweredIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnsweredIndexMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnsweredIndexMutation) ResetUserID() {
	m.user_id = nil
}

// SetSection sets the "section" field.
func (m *AnsweredIndexMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *AnsweredIndexMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the AnsweredIndex entity.
// If the AnsweredIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnsweredIndexMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *AnsweredIndexMutation) ResetSection() {
	m.section = nil
}

// SetItemIds sets the "item_ids" field.
func (m *AnsweredIndexMutation) SetItemIds(s []string) {
	m.item_ids = &s
	m.appenditem_ids = nil
}

// ItemIds returns the value of the "item_ids" field in the mutation.
func (m *AnsweredIndexMutation) ItemIds() (r []string, exists bool) {
	v := m.item_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIds returns the old "item_ids" field's value of the AnsweredIndex entity.
// If the AnsweredIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnsweredIndexMutation) OldItemIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIds: %w", err)
	}
	return oldValue.ItemIds, nil
}

// AppendItemIds adds s to the "item_ids" field.
func (m *AnsweredIndexMutation) AppendItemIds(s []string) {
	m.appenditem_ids = append(m.appenditem_ids, s...)
}

// AppendedItemIds returns the list of values that were appended to the "item_ids" field in this mutation.
func (m *AnsweredIndexMutation) AppendedItemIds() ([]string, bool) {
	if len(m.appenditem_ids) == 0 {
		return nil, false
	}
	return m.appenditem_ids, true
}

// ResetItemIds resets all changes to the "item_ids" field.
func (m *AnsweredIndexMutation) ResetItemIds() {
	m.item_ids = nil
	m.appenditem_ids = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnsweredIndexMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnsweredIndexMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnsweredIndex entity.
// If the AnsweredIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnsweredIndexMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnsweredIndexMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AnsweredIndexMutation builder.
func (m *AnsweredIndexMutation) Where(ps ...predicate.AnsweredIndex) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnsweredIndexMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnsweredIndexMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnsweredIndex, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnsweredIndexMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnsweredIndexMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnsweredIndex).
func (m *AnsweredIndexMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnsweredIndexMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, answeredindex.FieldUserID)
	}
	if m.section != nil {
		fields = append(fields, answeredindex.FieldSection)
	}
	if m.item_ids != nil {
		fields = append(fields, answeredindex.FieldItemIds)
	}
	if m.updated_at != nil {
		fields = append(fields, answeredindex.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnsweredIndexMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answeredindex.FieldUserID:
		return m.UserID()
	case answeredindex.FieldSection:
		return m.Section()
	case answeredindex.FieldItemIds:
		return m.ItemIds()
	case answeredindex.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnsweredIndexMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answeredindex.FieldUserID:
		return m.OldUserID(ctx)
	case answeredindex.FieldSection:
		return m.OldSection(ctx)
	case answeredindex.FieldItemIds:
		return m.OldItemIds(ctx)
	case answeredindex.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnsweredIndex field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnsweredIndexMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answeredindex.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case answeredindex.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case answeredindex.FieldItemIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIds(v)
		return nil
	case answeredindex.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnsweredIndex field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnsweredIndexMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnsweredIndexMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnsweredIndexMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnsweredIndex numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnsweredIndexMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnsweredIndexMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnsweredIndexMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnsweredIndex nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnsweredIndexMutation) ResetField(name string) error {
	switch name {
	case answeredindex.FieldUserID:
		m.ResetUserID()
		return nil
	case answeredindex.FieldSection:
		m.ResetSection()
		return nil
	case answeredindex.FieldItemIds:
		m.ResetItemIds()
		return nil
	case answeredindex.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnsweredIndex field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnsweredIndexMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnsweredIndexMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnsweredIndexMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnsweredIndexMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnsweredIndexMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnsweredIndexMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnsweredIndexMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnsweredIndex unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnsweredIndexMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnsweredIndex edge %s", name)
}

// ItemHistoryMutation represents an operation that mutates the ItemHistory nodes in the graph.
type ItemHistoryMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	item_id           *string
	section           *string
	topic             *string
	times_answered    *int
	addtimes_answered *int
	times_correct     *int
	addtimes_correct  *int
	last_answered_at  *time.Time
	last_correct      *bool
	mastery_level     *string
	next_review_at    *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ItemHistory, error)
	predicates        []predicate.ItemHistory
}

var _ ent.Mutation = (*ItemHistoryMutation)(nil)

// itemhistoryOption allows management of the mutation configuration using functional options.
type itemhistoryOption func(*ItemHistoryMutation)

// newItemHistoryMutation creates new mutation for the ItemHistory entity.
func newItemHistoryMutation(c config, op Op, opts ...itemhistoryOption) *ItemHistoryMutation {
	m := &ItemHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeItemHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemHistoryID sets the ID field of the mutation.
func withItemHistoryID(id int) itemhistoryOption {
	return func(m *ItemHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ItemHistory
		)
		m.oldValue = func(ctx context.Context) (*ItemHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItemHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItemHistory sets the old ItemHistory of the mutation.
func withItemHistory(node *ItemHistory) itemhistoryOption {
	return func(m *ItemHistoryMutation) {
		m.oldValue = func(context.Context) (*ItemHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItemHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ItemHistoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ItemHistoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ItemHistoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetItemID sets the "item_id" field.
func (m *ItemHistoryMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemHistoryMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemHistoryMutation) ResetItemID() {
	m.item_id = nil
}

// SetSection sets the "section" field.
func (m *ItemHistoryMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *ItemHistoryMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ItemHistoryMutation) ResetSection() {
	m.section = nil
}

// SetTopic sets the "topic" field.
func (m *ItemHistoryMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *ItemHistoryMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *ItemHistoryMutation) ResetTopic() {
	m.topic = nil
}

// SetTimesAnswered sets the "times_answered" field.
func (m *ItemHistoryMutation) SetTimesAnswered(i int) {
	m.times_answered = &i
	m.addtimes_answered = nil
}

// TimesAnswered returns the value of the "times_answered" field in the mutation.
func (m *ItemHistoryMutation) TimesAnswered() (r int, exists bool) {
	v := m.times_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesAnswered returns the old "times_answered" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldTimesAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesAnswered: %w", err)
	}
	return oldValue.TimesAnswered, nil
}

// AddTimesAnswered adds i to the "times_answered" field.
func (m *ItemHistoryMutation) AddTimesAnswered(i int) {
	if m.addtimes_answered != nil {
		*m.addtimes_answered += i
	} else {
		m.addtimes_answered = &i
	}
}

// AddedTimesAnswered returns the value that was added to the "times_answered" field in this mutation.
func (m *ItemHistoryMutation) AddedTimesAnswered() (r int, exists bool) {
	v := m.addtimes_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesAnswered resets all changes to the "times_answered" field.
func (m *ItemHistoryMutation) ResetTimesAnswered() {
	m.times_answered = nil
	m.addtimes_answered = nil
}

// SetTimesCorrect sets the "times_correct" field.
func (m *ItemHistoryMutation) SetTimesCorrect(i int) {
	m.times_correct = &i
	m.addtimes_correct = nil
}

// TimesCorrect returns the value of the "times_correct" field in the mutation.
func (m *ItemHistoryMutation) TimesCorrect() (r int, exists bool) {
	v := m.times_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesCorrect returns the old "times_correct" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldTimesCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesCorrect: %w", err)
	}
	return oldValue.TimesCorrect, nil
}

// AddTimesCorrect adds i to the "times_correct" field.
func (m *ItemHistoryMutation) AddTimesCorrect(i int) {
	if m.addtimes_correct != nil {
		*m.addtimes_correct += i
	} else {
		m.addtimes_correct = &i
	}
}

// AddedTimesCorrect returns the value that was added to the "times_correct" field in this mutation.
func (m *ItemHistoryMutation) AddedTimesCorrect() (r int, exists bool) {
	v := m.addtimes_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesCorrect resets all changes to the "times_correct" field.
func (m *ItemHistoryMutation) ResetTimesCorrect() {
	m.times_correct = nil
	m.addtimes_correct = nil
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (m *ItemHistoryMutation) SetLastAnsweredAt(t time.Time) {
	m.last_answered_at = &t
}

// LastAnsweredAt returns the value of the "last_answered_at" field in the mutation.
func (m *ItemHistoryMutation) LastAnsweredAt() (r time.Time, exists bool) {
	v := m.last_answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAnsweredAt returns the old "last_answered_at" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldLastAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAnsweredAt: %w", err)
	}
	return oldValue.LastAnsweredAt, nil
}

// ResetLastAnsweredAt resets all changes to the "last_answered_at" field.
func (m *ItemHistoryMutation) ResetLastAnsweredAt() {
	m.last_answered_at = nil
}

// SetLastCorrect sets the "last_correct" field.
func (m *ItemHistoryMutation) SetLastCorrect(b bool) {
	m.last_correct = &b
}

// LastCorrect returns the value of the "last_correct" field in the mutation.
func (m *ItemHistoryMutation) LastCorrect() (r bool, exists bool) {
	v := m.last_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCorrect returns the old "last_correct" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldLastCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCorrect: %w", err)
	}
	return oldValue.LastCorrect, nil
}

// ResetLastCorrect resets all changes to the "last_correct" field.
func (m *ItemHistoryMutation) ResetLastCorrect() {
	m.last_correct = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *ItemHistoryMutation) SetMasteryLevel(s string) {
	m.mastery_level = &s
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *ItemHistoryMutation) MasteryLevel() (r string, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldMasteryLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *ItemHistoryMutation) ResetMasteryLevel() {
	m.mastery_level = nil
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *ItemHistoryMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *ItemHistoryMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the ItemHistory entity.
// If the ItemHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemHistoryMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *ItemHistoryMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// Where appends a list predicates to the ItemHistoryMutation builder.
func (m *ItemHistoryMutation) Where(ps ...predicate.ItemHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItemHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItemHistory).
func (m *ItemHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, itemhistory.FieldUserID)
	}
	if m.item_id != nil {
		fields = append(fields, itemhistory.FieldItemID)
	}
	if m.section != nil {
		fields = append(fields, itemhistory.FieldSection)
	}
	if m.topic != nil {
		fields = append(fields, itemhistory.FieldTopic)
	}
	if m.times_answered != nil {
		fields = append(fields, itemhistory.FieldTimesAnswered)
	}
	if m.times_correct != nil {
		fields = append(fields, itemhistory.FieldTimesCorrect)
	}
	if m.last_answered_at != nil {
		fields = append(fields, itemhistory.FieldLastAnsweredAt)
	}
	if m.last_correct != nil {
		fields = append(fields, itemhistory.FieldLastCorrect)
	}
	if m.mastery_level != nil {
		fields = append(fields, itemhistory.FieldMasteryLevel)
	}
	if m.next_review_at != nil {
		fields = append(fields, itemhistory.FieldNextReviewAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itemhistory.FieldUserID:
		return m.UserID()
	case itemhistory.FieldItemID:
		return m.ItemID()
	case itemhistory.FieldSection:
		return m.Section()
	case itemhistory.FieldTopic:
		return m.Topic()
	case itemhistory.FieldTimesAnswered:
		return m.TimesAnswered()
	case itemhistory.FieldTimesCorrect:
		return m.TimesCorrect()
	case itemhistory.FieldLastAnsweredAt:
		return m.LastAnsweredAt()
	case itemhistory.FieldLastCorrect:
		return m.LastCorrect()
	case itemhistory.FieldMasteryLevel:
		return m.MasteryLevel()
	case itemhistory.FieldNextReviewAt:
		return m.NextReviewAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itemhistory.FieldUserID:
		return m.OldUserID(ctx)
	case itemhistory.FieldItemID:
		return m.OldItemID(ctx)
	case itemhistory.FieldSection:
		return m.OldSection(ctx)
	case itemhistory.FieldTopic:
		return m.OldTopic(ctx)
	case itemhistory.FieldTimesAnswered:
		return m.OldTimesAnswered(ctx)
	case itemhistory.FieldTimesCorrect:
		return m.OldTimesCorrect(ctx)
	case itemhistory.FieldLastAnsweredAt:
		return m.OldLastAnsweredAt(ctx)
	case itemhistory.FieldLastCorrect:
		return m.OldLastCorrect(ctx)
	case itemhistory.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case itemhistory.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	}
	return nil, fmt.Errorf("unknown ItemHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itemhistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case itemhistory.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case itemhistory.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case itemhistory.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case itemhistory.FieldTimesAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesAnswered(v)
		return nil
	case itemhistory.FieldTimesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesCorrect(v)
		return nil
	case itemhistory.FieldLastAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAnsweredAt(v)
		return nil
	case itemhistory.FieldLastCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCorrect(v)
		return nil
	case itemhistory.FieldMasteryLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case itemhistory.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	}
	return fmt.Errorf("unknown ItemHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addtimes_answered != nil {
		fields = append(fields, itemhistory.FieldTimesAnswered)
	}
	if m.addtimes_correct != nil {
		fields = append(fields, itemhistory.FieldTimesCorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itemhistory.FieldTimesAnswered:
		return m.AddedTimesAnswered()
	case itemhistory.FieldTimesCorrect:
		return m.AddedTimesCorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itemhistory.FieldTimesAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesAnswered(v)
		return nil
	case itemhistory.FieldTimesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown ItemHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ItemHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemHistoryMutation) ResetField(name string) error {
	switch name {
	case itemhistory.FieldUserID:
		m.ResetUserID()
		return nil
	case itemhistory.FieldItemID:
		m.ResetItemID()
		return nil
	case itemhistory.FieldSection:
		m.ResetSection()
		return nil
	case itemhistory.FieldTopic:
		m.ResetTopic()
		return nil
	case itemhistory.FieldTimesAnswered:
		m.ResetTimesAnswered()
		return nil
	case itemhistory.FieldTimesCorrect:
		m.ResetTimesCorrect()
		return nil
	case itemhistory.FieldLastAnsweredAt:
		m.ResetLastAnsweredAt()
		return nil
	case itemhistory.FieldLastCorrect:
		m.ResetLastCorrect()
		return nil
	case itemhistory.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case itemhistory.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	}
	return fmt.Errorf("unknown ItemHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ItemHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ItemHistory edge %s", name)
}

// LessonProgressMutation represents an operation that mutates the LessonProgress nodes in the graph.
type LessonProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	lesson_id     *string
	section       *string
	percent       *float64
	addpercent    *float64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LessonProgress, error)
	predicates    []predicate.LessonProgress
}

var _ ent.Mutation = (*LessonProgressMutation)(nil)

// lessonprogressOption allows management of the mutation configuration using functional options.
type lessonprogressOption func(*LessonProgressMutation)

// newLessonProgressMutation creates new mutation for the LessonProgress entity.
func newLessonProgressMutation(c config, op Op, opts ...lessonprogressOption) *LessonProgressMutation {
	m := &LessonProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonProgressID sets the ID field of the mutation.
func withLessonProgressID(id int) lessonprogressOption {
	return func(m *LessonProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonProgress
		)
		m.oldValue = func(ctx context.Context) (*LessonProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonProgress sets the old LessonProgress of the mutation.
func withLessonProgress(node *LessonProgress) lessonprogressOption {
	return func(m *LessonProgressMutation) {
		m.oldValue = func(context.Context) (*LessonProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LessonProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LessonProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LessonProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonProgressMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonProgressMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonProgressMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetSection sets the "section" field.
func (m *LessonProgressMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *LessonProgressMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *LessonProgressMutation) ResetSection() {
	m.section = nil
}

// SetPercent sets the "percent" field.
func (m *LessonProgressMutation) SetPercent(f float64) {
	m.percent = &f
	m.addpercent = nil
}

// Percent returns the value of the "percent" field in the mutation.
func (m *LessonProgressMutation) Percent() (r float64, exists bool) {
	v := m.percent
	if v == nil {
		return
	}
	return *v, true
}

// OldPercent returns the old "percent" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldPercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercent: %w", err)
	}
	return oldValue.Percent, nil
}

// AddPercent adds f to the "percent" field.
func (m *LessonProgressMutation) AddPercent(f float64) {
	if m.addpercent != nil {
		*m.addpercent += f
	} else {
		m.addpercent = &f
	}
}

// AddedPercent returns the value that was added to the "percent" field in this mutation.
func (m *LessonProgressMutation) AddedPercent() (r float64, exists bool) {
	v := m.addpercent
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercent resets all changes to the "percent" field.
func (m *LessonProgressMutation) ResetPercent() {
	m.percent = nil
	m.addpercent = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LessonProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LessonProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LessonProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LessonProgressMutation builder.
func (m *LessonProgressMutation) Where(ps ...predicate.LessonProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonProgress).
func (m *LessonProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonProgressMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, lessonprogress.FieldUserID)
	}
	if m.lesson_id != nil {
		fields = append(fields, lessonprogress.FieldLessonID)
	}
	if m.section != nil {
		fields = append(fields, lessonprogress.FieldSection)
	}
	if m.percent != nil {
		fields = append(fields, lessonprogress.FieldPercent)
	}
	if m.updated_at != nil {
		fields = append(fields, lessonprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonprogress.FieldUserID:
		return m.UserID()
	case lessonprogress.FieldLessonID:
		return m.LessonID()
	case lessonprogress.FieldSection:
		return m.Section()
	case lessonprogress.FieldPercent:
		return m.Percent()
	case lessonprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonprogress.FieldUserID:
		return m.OldUserID(ctx)
	case lessonprogress.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessonprogress.FieldSection:
		return m.OldSection(ctx)
	case lessonprogress.FieldPercent:
		return m.OldPercent(ctx)
	case lessonprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case lessonprogress.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessonprogress.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case lessonprogress.FieldPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercent(v)
		return nil
	case lessonprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonProgressMutation) AddedFields() []string {
	var fields []string
	if m.addpercent != nil {
		fields = append(fields, lessonprogress.FieldPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonprogress.FieldPercent:
		return m.AddedPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonprogress.FieldPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercent(v)
		return nil
	}
	return fmt.Errorf("unknown LessonProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonProgressMutation) ResetField(name string) error {
	switch name {
	case lessonprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case lessonprogress.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessonprogress.FieldSection:
		m.ResetSection()
		return nil
	case lessonprogress.FieldPercent:
		m.ResetPercent()
		return nil
	case lessonprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonProgress edge %s", name)
}

// SimTaskHistoryMutation represents an operation that mutates the SimTaskHistory nodes in the graph.
type SimTaskHistoryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	task_id             *string
	section             *string
	topic               *string
	attempts            *int
	addattempts         *int
	best_score          *float64
	addbest_score       *float64
	last_score          *float64
	addlast_score       *float64
	avg_score           *float64
	addavg_score        *float64
	last_attempted_at   *time.Time
	total_time_spent    *int
	addtotal_time_spent *int
	mastered            *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SimTaskHistory, error)
	predicates          []predicate.SimTaskHistory
}

var _ ent.Mutation = (*SimTaskHistoryMutation)(nil)

// simtaskhistoryOption allows management of the mutation configuration using functional options.
type simtaskhistoryOption func(*SimTaskHistoryMutation)

// newSimTaskHistoryMutation creates new mutation for the SimTaskHistory entity.
func newSimTaskHistoryMutation(c config, op Op, opts ...simtaskhistoryOption) *SimTaskHistoryMutation {
	m := &SimTaskHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSimTaskHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSimTaskHistoryID sets the ID field of the mutation.
func withSimTaskHistoryID(id int) simtaskhistoryOption {
	return func(m *SimTaskHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SimTaskHistory
		)
		m.oldValue = func(ctx context.Context) (*SimTaskHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SimTaskHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSimTaskHistory sets the old SimTaskHistory of the mutation.
func withSimTaskHistory(node *SimTaskHistory) simtaskhistoryOption {
	return func(m *SimTaskHistoryMutation) {
		m.oldValue = func(context.Context) (*SimTaskHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SimTaskHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SimTaskHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SimTaskHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SimTaskHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SimTaskHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SimTaskHistoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SimTaskHistoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SimTaskHistoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *SimTaskHistoryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SimTaskHistoryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SimTaskHistoryMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSection sets the "section" field.
func (m *SimTaskHistoryMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *SimTaskHistoryMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *SimTaskHistoryMutation) ResetSection() {
	m.section = nil
}

// SetTopic sets the "topic" field.
func (m *SimTaskHistoryMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *SimTaskHistoryMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *SimTaskHistoryMutation) ResetTopic() {
	m.topic = nil
}

// SetAttempts sets the "attempts" field.
func (m *SimTaskHistoryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SimTaskHistoryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *SimTaskHistoryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *SimTaskHistoryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SimTaskHistoryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetBestScore sets the "best_score" field.
func (m *SimTaskHistoryMutation) SetBestScore(f float64) {
	m.best_score = &f
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *SimTaskHistoryMutation) BestScore() (r float64, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldBestScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds f to the "best_score" field.
func (m *SimTaskHistoryMutation) AddBestScore(f float64) {
	if m.addbest_score != nil {
		*m.addbest_score += f
	} else {
		m.addbest_score = &f
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *SimTaskHistoryMutation) AddedBestScore() (r float64, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *SimTaskHistoryMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetLastScore sets the "last_score" field.
func (m *SimTaskHistoryMutation) SetLastScore(f float64) {
	m.last_score = &f
	m.addlast_score = nil
}

// LastScore returns the value of the "last_score" field in the mutation.
func (m *SimTaskHistoryMutation) LastScore() (r float64, exists bool) {
	v := m.last_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScore returns the old "last_score" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldLastScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScore: %w", err)
	}
	return oldValue.LastScore, nil
}

// AddLastScore adds f to the "last_score" field.
func (m *SimTaskHistoryMutation) AddLastScore(f float64) {
	if m.addlast_score != nil {
		*m.addlast_score += f
	} else {
		m.addlast_score = &f
	}
}

// AddedLastScore returns the value that was added to the "last_score" field in this mutation.
func (m *SimTaskHistoryMutation) AddedLastScore() (r float64, exists bool) {
	v := m.addlast_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastScore resets all changes to the "last_score" field.
func (m *SimTaskHistoryMutation) ResetLastScore() {
	m.last_score = nil
	m.addlast_score = nil
}

// SetAvgScore sets the "avg_score" field.
func (m *SimTaskHistoryMutation) SetAvgScore(f float64) {
	m.avg_score = &f
	m.addavg_score = nil
}

// AvgScore returns the value of the "avg_score" field in the mutation.
func (m *SimTaskHistoryMutation) AvgScore() (r float64, exists bool) {
	v := m.avg_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgScore returns the old "avg_score" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldAvgScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgScore: %w", err)
	}
	return oldValue.AvgScore, nil
}

// AddAvgScore adds f to the "avg_score" field.
func (m *SimTaskHistoryMutation) AddAvgScore(f float64) {
	if m.addavg_score != nil {
		*m.addavg_score += f
	} else {
		m.addavg_score = &f
	}
}

// AddedAvgScore returns the value that was added to the "avg_score" field in this mutation.
func (m *SimTaskHistoryMutation) AddedAvgScore() (r float64, exists bool) {
	v := m.addavg_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgScore resets all changes to the "avg_score" field.
func (m *SimTaskHistoryMutation) ResetAvgScore() {
	m.avg_score = nil
	m.addavg_score = nil
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (m *SimTaskHistoryMutation) SetLastAttemptedAt(t time.Time) {
	m.last_attempted_at = &t
}

// LastAttemptedAt returns the value of the "last_attempted_at" field in the mutation.
func (m *SimTaskHistoryMutation) LastAttemptedAt() (r time.Time, exists bool) {
	v := m.last_attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptedAt returns the old "last_attempted_at" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldLastAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptedAt: %w", err)
	}
	return oldValue.LastAttemptedAt, nil
}

// ResetLastAttemptedAt resets all changes to the "last_attempted_at" field.
func (m *SimTaskHistoryMutation) ResetLastAttemptedAt() {
	m.last_attempted_at = nil
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (m *SimTaskHistoryMutation) SetTotalTimeSpent(i int) {
	m.total_time_spent = &i
	m.addtotal_time_spent = nil
}

// TotalTimeSpent returns the value of the "total_time_spent" field in the mutation.
func (m *SimTaskHistoryMutation) TotalTimeSpent() (r int, exists bool) {
	v := m.total_time_spent
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSpent returns the old "total_time_spent" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldTotalTimeSpent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSpent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSpent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSpent: %w", err)
	}
	return oldValue.TotalTimeSpent, nil
}

// AddTotalTimeSpent adds i to the "total_time_spent" field.
func (m *SimTaskHistoryMutation) AddTotalTimeSpent(i int) {
	if m.addtotal_time_spent != nil {
		*m.addtotal_time_spent += i
	} else {
		m.addtotal_time_spent = &i
	}
}

// AddedTotalTimeSpent returns the value that was added to the "total_time_spent" field in this mutation.
func (m *SimTaskHistoryMutation) AddedTotalTimeSpent() (r int, exists bool) {
	v := m.addtotal_time_spent
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSpent resets all changes to the "total_time_spent" field.
func (m *SimTaskHistoryMutation) ResetTotalTimeSpent() {
	m.total_time_spent = nil
	m.addtotal_time_spent = nil
}

// SetMastered sets the "mastered" field.
func (m *SimTaskHistoryMutation) SetMastered(b bool) {
	m.mastered = &b
}

// Mastered returns the value of the "mastered" field in the mutation.
func (m *SimTaskHistoryMutation) Mastered() (r bool, exists bool) {
	v := m.mastered
	if v == nil {
		return
	}
	return *v, true
}

// OldMastered returns the old "mastered" field's value of the SimTaskHistory entity.
// If the SimTaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimTaskHistoryMutation) OldMastered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastered: %w", err)
	}
	return oldValue.Mastered, nil
}

// ResetMastered resets all changes to the "mastered" field.
func (m *SimTaskHistoryMutation) ResetMastered() {
	m.mastered = nil
}

// Where appends a list predicates to the SimTaskHistoryMutation builder.
func (m *SimTaskHistoryMutation) Where(ps ...predicate.SimTaskHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SimTaskHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SimTaskHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SimTaskHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SimTaskHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SimTaskHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SimTaskHistory).
func (m *SimTaskHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SimTaskHistoryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, simtaskhistory.FieldUserID)
	}
	if m.task_id != nil {
		fields = append(fields, simtaskhistory.FieldTaskID)
	}
	if m.section != nil {
		fields = append(fields, simtaskhistory.FieldSection)
	}
	if m.topic != nil {
		fields = append(fields, simtaskhistory.FieldTopic)
	}
	if m.attempts != nil {
		fields = append(fields, simtaskhistory.FieldAttempts)
	}
	if m.best_score != nil {
		fields = append(fields, simtaskhistory.FieldBestScore)
	}
	if m.last_score != nil {
		fields = append(fields, simtaskhistory.FieldLastScore)
	}
	if m.avg_score != nil {
		fields = append(fields, simtaskhistory.FieldAvgScore)
	}
	if m.last_attempted_at != nil {
		fields = append(fields, simtaskhistory.FieldLastAttemptedAt)
	}
	if m.total_time_spent != nil {
		fields = append(fields, simtaskhistory.FieldTotalTimeSpent)
	}
	if m.mastered != nil {
		fields = append(fields, simtaskhistory.FieldMastered)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SimTaskHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case simtaskhistory.FieldUserID:
		return m.UserID()
	case simtaskhistory.FieldTaskID:
		return m.TaskID()
	case simtaskhistory.FieldSection:
		return m.Section()
	case simtaskhistory.FieldTopic:
		return m.Topic()
	case simtaskhistory.FieldAttempts:
		return m.Attempts()
	case simtaskhistory.FieldBestScore:
		return m.BestScore()
	case simtaskhistory.FieldLastScore:
		return m.LastScore()
	case simtaskhistory.FieldAvgScore:
		return m.AvgScore()
	case simtaskhistory.FieldLastAttemptedAt:
		return m.LastAttemptedAt()
	case simtaskhistory.FieldTotalTimeSpent:
		return m.TotalTimeSpent()
	case simtaskhistory.FieldMastered:
		return m.Mastered()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SimTaskHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case simtaskhistory.FieldUserID:
		return m.OldUserID(ctx)
	case simtaskhistory.FieldTaskID:
		return m.OldTaskID(ctx)
	case simtaskhistory.FieldSection:
		return m.OldSection(ctx)
	case simtaskhistory.FieldTopic:
		return m.OldTopic(ctx)
	case simtaskhistory.FieldAttempts:
		return m.OldAttempts(ctx)
	case simtaskhistory.FieldBestScore:
		return m.OldBestScore(ctx)
	case simtaskhistory.FieldLastScore:
		return m.OldLastScore(ctx)
	case simtaskhistory.FieldAvgScore:
		return m.OldAvgScore(ctx)
	case simtaskhistory.FieldLastAttemptedAt:
		return m.OldLastAttemptedAt(ctx)
	case simtaskhistory.FieldTotalTimeSpent:
		return m.OldTotalTimeSpent(ctx)
	case simtaskhistory.FieldMastered:
		return m.OldMastered(ctx)
	}
	return nil, fmt.Errorf("unknown SimTaskHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SimTaskHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case simtaskhistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case simtaskhistory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case simtaskhistory.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case simtaskhistory.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case simtaskhistory.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case simtaskhistory.FieldBestScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case simtaskhistory.FieldLastScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScore(v)
		return nil
	case simtaskhistory.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgScore(v)
		return nil
	case simtaskhistory.FieldLastAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptedAt(v)
		return nil
	case simtaskhistory.FieldTotalTimeSpent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSpent(v)
		return nil
	case simtaskhistory.FieldMastered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastered(v)
		return nil
	}
	return fmt.Errorf("unknown SimTaskHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SimTaskHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, simtaskhistory.FieldAttempts)
	}
	if m.addbest_score != nil {
		fields = append(fields, simtaskhistory.FieldBestScore)
	}
	if m.addlast_score != nil {
		fields = append(fields, simtaskhistory.FieldLastScore)
	}
	if m.addavg_score != nil {
		fields = append(fields, simtaskhistory.FieldAvgScore)
	}
	if m.addtotal_time_spent != nil {
		fields = append(fields, simtaskhistory.FieldTotalTimeSpent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SimTaskHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case simtaskhistory.FieldAttempts:
		return m.AddedAttempts()
	case simtaskhistory.FieldBestScore:
		return m.AddedBestScore()
	case simtaskhistory.FieldLastScore:
		return m.AddedLastScore()
	case simtaskhistory.FieldAvgScore:
		return m.AddedAvgScore()
	case simtaskhistory.FieldTotalTimeSpent:
		return m.AddedTotalTimeSpent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SimTaskHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case simtaskhistory.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case simtaskhistory.FieldBestScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case simtaskhistory.FieldLastScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastScore(v)
		return nil
	case simtaskhistory.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgScore(v)
		return nil
	case simtaskhistory.FieldTotalTimeSpent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSpent(v)
		return nil
	}
	return fmt.Errorf("unknown SimTaskHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SimTaskHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SimTaskHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SimTaskHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SimTaskHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SimTaskHistoryMutation) ResetField(name string) error {
	switch name {
	case simtaskhistory.FieldUserID:
		m.ResetUserID()
		return nil
	case simtaskhistory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case simtaskhistory.FieldSection:
		m.ResetSection()
		return nil
	case simtaskhistory.FieldTopic:
		m.ResetTopic()
		return nil
	case simtaskhistory.FieldAttempts:
		m.ResetAttempts()
		return nil
	case simtaskhistory.FieldBestScore:
		m.ResetBestScore()
		return nil
	case simtaskhistory.FieldLastScore:
		m.ResetLastScore()
		return nil
	case simtaskhistory.FieldAvgScore:
		m.ResetAvgScore()
		return nil
	case simtaskhistory.FieldLastAttemptedAt:
		m.ResetLastAttemptedAt()
		return nil
	case simtaskhistory.FieldTotalTimeSpent:
		m.ResetTotalTimeSpent()
		return nil
	case simtaskhistory.FieldMastered:
		m.ResetMastered()
		return nil
	}
	return fmt.Errorf("unknown SimTaskHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SimTaskHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SimTaskHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SimTaskHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SimTaskHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SimTaskHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SimTaskHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SimTaskHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SimTaskHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SimTaskHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SimTaskHistory edge %s", name)
}
