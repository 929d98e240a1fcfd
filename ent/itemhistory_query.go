// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// ItemHistoryQuery is the builder for querying ItemHistory entities.
type ItemHistoryQuery struct {
	config
	ctx        *QueryContext
	order      []itemhistory.OrderOption
	inters     []Interceptor
	predicates []predicate.ItemHistory
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ItemHistoryQuery builder.
func (ihq *ItemHistoryQuery) Where(ps ...predicate.ItemHistory) *ItemHistoryQuery {
	ihq.predicates = append(ihq.predicates, ps...)
	return ihq
}

// Limit the number of records to be returned by this query.
func (ihq *ItemHistoryQuery) Limit(limit int) *ItemHistoryQuery {
	ihq.ctx.Limit = &limit
	return ihq
}

// Offset to start from.
func (ihq *ItemHistoryQuery) Offset(offset int) *ItemHistoryQuery {
	ihq.ctx.Offset = &offset
	return ihq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ihq *ItemHistoryQuery) Unique(unique bool) *ItemHistoryQuery {
	ihq.ctx.Unique = &unique
	return ihq
}

// Order specifies how the records should be ordered.
func (ihq *ItemHistoryQuery) Order(o ...itemhistory.OrderOption) *ItemHistoryQuery {
	ihq.order = append(ihq.order, o...)
	return ihq
}

// First returns the first ItemHistory entity from the query.
// Returns a *NotFoundError when no ItemHistory was found.
func (ihq *ItemHistoryQuery) First(ctx context.Context) (*ItemHistory, error) {
	nodes, err := ihq.Limit(1).All(setContextOp(ctx, ihq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{itemhistory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ihq *ItemHistoryQuery) FirstX(ctx context.Context) *ItemHistory {
	node, err := ihq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ItemHistory ID from the query.
// Returns a *NotFoundError when no ItemHistory ID was found.
func (ihq *ItemHistoryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ihq.Limit(1).IDs(setContextOp(ctx, ihq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{itemhistory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ihq *ItemHistoryQuery) FirstIDX(ctx context.Context) int {
	id, err := ihq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ItemHistory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ItemHistory entity is found.
// Returns a *NotFoundError when no ItemHistory entities are found.
func (ihq *ItemHistoryQuery) Only(ctx context.Context) (*ItemHistory, error) {
	nodes, err := ihq.Limit(2).All(setContextOp(ctx, ihq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{itemhistory.Label}
	default:
		return nil, &NotSingularError{itemhistory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ihq *ItemHistoryQuery) OnlyX(ctx context.Context) *ItemHistory {
	node, err := ihq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ItemHistory ID in the query.
// Returns a *NotSingularError when more than one ItemHistory ID is found.
// Returns a *NotFoundError when no entities are found.
func (ihq *ItemHistoryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ihq.Limit(2).IDs(setContextOp(ctx, ihq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{itemhistory.Label}
	default:
		err = &NotSingularError{itemhistory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ihq *ItemHistoryQuery) OnlyIDX(ctx context.Context) int {
	id, err := ihq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ItemHistories.
func (ihq *ItemHistoryQuery) All(ctx context.Context) ([]*ItemHistory, error) {
	ctx = setContextOp(ctx, ihq.ctx, ent.OpQueryAll)
	if err := ihq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ItemHistory, *ItemHistoryQuery]()
	return withInterceptors[[]*ItemHistory](ctx, ihq, qr, ihq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ihq *ItemHistoryQuery) AllX(ctx context.Context) []*ItemHistory {
	nodes, err := ihq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ItemHistory IDs.
func (ihq *ItemHistoryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ihq.ctx.Unique == nil && ihq.path != nil {
		ihq.Unique(true)
	}
	ctx = setContextOp(ctx, ihq.ctx, ent.OpQueryIDs)
	if err = ihq.Select(itemhistory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ihq *ItemHistoryQuery) IDsX(ctx context.Context) []int {
	ids, err := ihq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ihq *ItemHistoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ihq.ctx, ent.OpQueryCount)
	if err := ihq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ihq, querierCount[*ItemHistoryQuery](), ihq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ihq *ItemHistoryQuery) CountX(ctx context.Context) int {
	count, err := ihq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ihq *ItemHistoryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ihq.ctx, ent.OpQueryExist)
	switch _, err := ihq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ihq *ItemHistoryQuery) ExistX(ctx context.Context) bool {
	exist, err := ihq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ItemHistoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ihq *ItemHistoryQuery) Clone() *ItemHistoryQuery {
	if ihq == nil {
		return nil
	}
	return &ItemHistoryQuery{
		config:     ihq.config,
		ctx:        ihq.ctx.Clone(),
		order:      append([]itemhistory.OrderOption{}, ihq.order...),
		inters:     append([]Interceptor{}, ihq.inters...),
		predicates: append([]predicate.ItemHistory{}, ihq.predicates...),
		// clone intermediate query.
		sql:  ihq.sql.Clone(),
		path: ihq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ItemHistory.Query().
//		GroupBy(itemhistory.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ihq *ItemHistoryQuery) GroupBy(field string, fields ...string) *ItemHistoryGroupBy {
	ihq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ItemHistoryGroupBy{build: ihq}
	grbuild.flds = &ihq.ctx.Fields
	grbuild.label = itemhistory.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.ItemHistory.Query().
//		Select(itemhistory.FieldUserID).
//		Scan(ctx, &v)
func (ihq *ItemHistoryQuery) Select(fields ...string) *ItemHistorySelect {
	ihq.ctx.Fields = append(ihq.ctx.Fields, fields...)
	sbuild := &ItemHistorySelect{ItemHistoryQuery: ihq}
	sbuild.label = itemhistory.Label
	sbuild.flds, sbuild.scan = &ihq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ItemHistorySelect configured with the given aggregations.
func (ihq *ItemHistoryQuery) Aggregate(fns ...AggregateFunc) *ItemHistorySelect {
	return ihq.Select().Aggregate(fns...)
}

func (ihq *ItemHistoryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ihq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ihq); err != nil {
				return err
			}
		}
	}
	for _, f := range ihq.ctx.Fields {
		if !itemhistory.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ihq.path != nil {
		prev, err := ihq.path(ctx)
		if err != nil {
			return err
		}
		ihq.sql = prev
	}
	return nil
}

func (ihq *ItemHistoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ItemHistory, error) {
	var (
		nodes = []*ItemHistory{}
		_spec = ihq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ItemHistory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ItemHistory{config: ihq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ihq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ihq *ItemHistoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ihq.querySpec()
	_spec.Node.Columns = ihq.ctx.Fields
	if len(ihq.ctx.Fields) > 0 {
		_spec.Unique = ihq.ctx.Unique != nil && *ihq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ihq.driver, _spec)
}

func (ihq *ItemHistoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(itemhistory.Table, itemhistory.Columns, sqlgraph.NewFieldSpec(itemhistory.FieldID, field.TypeInt))
	_spec.From = ihq.sql
	if unique := ihq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ihq.path != nil {
		_spec.Unique = true
	}
	if fields := ihq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemhistory.FieldID)
		for i := range fields {
			if fields[i] != itemhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ihq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ihq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ihq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ihq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ihq *ItemHistoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ihq.driver.Dialect())
	t1 := builder.Table(itemhistory.Table)
	columns := ihq.ctx.Fields
	if len(columns) == 0 {
		columns = itemhistory.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ihq.sql != nil {
		selector = ihq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ihq.ctx.Unique != nil && *ihq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ihq.predicates {
		p(selector)
	}
	for _, p := range ihq.order {
		p(selector)
	}
	if offset := ihq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ihq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ItemHistoryGroupBy is the group-by builder for ItemHistory entities.
type ItemHistoryGroupBy struct {
	selector
	build *ItemHistoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ihgb *ItemHistoryGroupBy) Aggregate(fns ...AggregateFunc) *ItemHistoryGroupBy {
	ihgb.fns = append(ihgb.fns, fns...)
	return ihgb
}

// Scan applies the selector query and scans the result into the given value.
func (ihgb *ItemHistoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ihgb.build.ctx, ent.OpQueryGroupBy)
	if err := ihgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItemHistoryQuery, *ItemHistoryGroupBy](ctx, ihgb.build, ihgb, ihgb.build.inters, v)
}

func (ihgb *ItemHistoryGroupBy) sqlScan(ctx context.Context, root *ItemHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ihgb.fns))
	for _, fn := range ihgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ihgb.flds)+len(ihgb.fns))
		for _, f := range *ihgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ihgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ihgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ItemHistorySelect is the builder for selecting fields of ItemHistory entities.
type ItemHistorySelect struct {
	*ItemHistoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ihs *ItemHistorySelect) Aggregate(fns ...AggregateFunc) *ItemHistorySelect {
	ihs.fns = append(ihs.fns, fns...)
	return ihs
}

// Scan applies the selector query and scans the result into the given value.
func (ihs *ItemHistorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ihs.ctx, ent.OpQuerySelect)
	if err := ihs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItemHistoryQuery, *ItemHistorySelect](ctx, ihs.ItemHistoryQuery, ihs, ihs.inters, v)
}

func (ihs *ItemHistorySelect) sqlScan(ctx context.Context, root *ItemHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ihs.fns))
	for _, fn := range ihs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ihs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ihs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
