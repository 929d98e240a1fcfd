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
	"github.com/studymesh/cpaprep/ent/predicate"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// SimTaskHistoryQuery is the builder for querying SimTaskHistory entities.
type SimTaskHistoryQuery struct {
	config
	ctx        *QueryContext
	order      []simtaskhistory.OrderOption
	inters     []Interceptor
	predicates []predicate.SimTaskHistory
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SimTaskHistoryQuery builder.
func (sthq *SimTaskHistoryQuery) Where(ps ...predicate.SimTaskHistory) *SimTaskHistoryQuery {
	sthq.predicates = append(sthq.predicates, ps...)
	return sthq
}

// Limit the number of records to be returned by this query.
func (sthq *SimTaskHistoryQuery) Limit(limit int) *SimTaskHistoryQuery {
	sthq.ctx.Limit = &limit
	return sthq
}

// Offset to start from.
func (sthq *SimTaskHistoryQuery) Offset(offset int) *SimTaskHistoryQuery {
	sthq.ctx.Offset = &offset
	return sthq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (sthq *SimTaskHistoryQuery) Unique(unique bool) *SimTaskHistoryQuery {
	sthq.ctx.Unique = &unique
	return sthq
}

// Order specifies how the records should be ordered.
func (sthq *SimTaskHistoryQuery) Order(o ...simtaskhistory.OrderOption) *SimTaskHistoryQuery {
	sthq.order = append(sthq.order, o...)
	return sthq
}

// First returns the first SimTaskHistory entity from the query.
// Returns a *NotFoundError when no SimTaskHistory was found.
func (sthq *SimTaskHistoryQuery) First(ctx context.Context) (*SimTaskHistory, error) {
	nodes, err := sthq.Limit(1).All(setContextOp(ctx, sthq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{simtaskhistory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) FirstX(ctx context.Context) *SimTaskHistory {
	node, err := sthq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SimTaskHistory ID from the query.
// Returns a *NotFoundError when no SimTaskHistory ID was found.
func (sthq *SimTaskHistoryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = sthq.Limit(1).IDs(setContextOp(ctx, sthq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{simtaskhistory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) FirstIDX(ctx context.Context) int {
	id, err := sthq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SimTaskHistory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SimTaskHistory entity is found.
// Returns a *NotFoundError when no SimTaskHistory entities are found.
func (sthq *SimTaskHistoryQuery) Only(ctx context.Context) (*SimTaskHistory, error) {
	nodes, err := sthq.Limit(2).All(setContextOp(ctx, sthq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{simtaskhistory.Label}
	default:
		return nil, &NotSingularError{simtaskhistory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) OnlyX(ctx context.Context) *SimTaskHistory {
	node, err := sthq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SimTaskHistory ID in the query.
// Returns a *NotSingularError when more than one SimTaskHistory ID is found.
// Returns a *NotFoundError when no entities are found.
func (sthq *SimTaskHistoryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = sthq.Limit(2).IDs(setContextOp(ctx, sthq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{simtaskhistory.Label}
	default:
		err = &NotSingularError{simtaskhistory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) OnlyIDX(ctx context.Context) int {
	id, err := sthq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SimTaskHistories.
func (sthq *SimTaskHistoryQuery) All(ctx context.Context) ([]*SimTaskHistory, error) {
	ctx = setContextOp(ctx, sthq.ctx, ent.OpQueryAll)
	if err := sthq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SimTaskHistory, *SimTaskHistoryQuery]()
	return withInterceptors[[]*SimTaskHistory](ctx, sthq, qr, sthq.inters)
}

// AllX is like All, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) AllX(ctx context.Context) []*SimTaskHistory {
	nodes, err := sthq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SimTaskHistory IDs.
func (sthq *SimTaskHistoryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if sthq.ctx.Unique == nil && sthq.path != nil {
		sthq.Unique(true)
	}
	ctx = setContextOp(ctx, sthq.ctx, ent.OpQueryIDs)
	if err = sthq.Select(simtaskhistory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) IDsX(ctx context.Context) []int {
	ids, err := sthq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (sthq *SimTaskHistoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, sthq.ctx, ent.OpQueryCount)
	if err := sthq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, sthq, querierCount[*SimTaskHistoryQuery](), sthq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) CountX(ctx context.Context) int {
	count, err := sthq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (sthq *SimTaskHistoryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, sthq.ctx, ent.OpQueryExist)
	switch _, err := sthq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (sthq *SimTaskHistoryQuery) ExistX(ctx context.Context) bool {
	exist, err := sthq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SimTaskHistoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (sthq *SimTaskHistoryQuery) Clone() *SimTaskHistoryQuery {
	if sthq == nil {
		return nil
	}
	return &SimTaskHistoryQuery{
		config:     sthq.config,
		ctx:        sthq.ctx.Clone(),
		order:      append([]simtaskhistory.OrderOption{}, sthq.order...),
		inters:     append([]Interceptor{}, sthq.inters...),
		predicates: append([]predicate.SimTaskHistory{}, sthq.predicates...),
		// clone intermediate query.
		sql:  sthq.sql.Clone(),
		path: sthq.path,
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
//	client.SimTaskHistory.Query().
//		GroupBy(simtaskhistory.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (sthq *SimTaskHistoryQuery) GroupBy(field string, fields ...string) *SimTaskHistoryGroupBy {
	sthq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SimTaskHistoryGroupBy{build: sthq}
	grbuild.flds = &sthq.ctx.Fields
	grbuild.label = simtaskhistory.Label
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
//	client.SimTaskHistory.Query().
//		Select(simtaskhistory.FieldUserID).
//		Scan(ctx, &v)
func (sthq *SimTaskHistoryQuery) Select(fields ...string) *SimTaskHistorySelect {
	sthq.ctx.Fields = append(sthq.ctx.Fields, fields...)
	sbuild := &SimTaskHistorySelect{SimTaskHistoryQuery: sthq}
	sbuild.label = simtaskhistory.Label
	sbuild.flds, sbuild.scan = &sthq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SimTaskHistorySelect configured with the given aggregations.
func (sthq *SimTaskHistoryQuery) Aggregate(fns ...AggregateFunc) *SimTaskHistorySelect {
	return sthq.Select().Aggregate(fns...)
}

func (sthq *SimTaskHistoryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range sthq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, sthq); err != nil {
				return err
			}
		}
	}
	for _, f := range sthq.ctx.Fields {
		if !simtaskhistory.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if sthq.path != nil {
		prev, err := sthq.path(ctx)
		if err != nil {
			return err
		}
		sthq.sql = prev
	}
	return nil
}

func (sthq *SimTaskHistoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SimTaskHistory, error) {
	var (
		nodes = []*SimTaskHistory{}
		_spec = sthq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SimTaskHistory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SimTaskHistory{config: sthq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, sthq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (sthq *SimTaskHistoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := sthq.querySpec()
	_spec.Node.Columns = sthq.ctx.Fields
	if len(sthq.ctx.Fields) > 0 {
		_spec.Unique = sthq.ctx.Unique != nil && *sthq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, sthq.driver, _spec)
}

func (sthq *SimTaskHistoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(simtaskhistory.Table, simtaskhistory.Columns, sqlgraph.NewFieldSpec(simtaskhistory.FieldID, field.TypeInt))
	_spec.From = sthq.sql
	if unique := sthq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if sthq.path != nil {
		_spec.Unique = true
	}
	if fields := sthq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, simtaskhistory.FieldID)
		for i := range fields {
			if fields[i] != simtaskhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := sthq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := sthq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := sthq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := sthq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (sthq *SimTaskHistoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(sthq.driver.Dialect())
	t1 := builder.Table(simtaskhistory.Table)
	columns := sthq.ctx.Fields
	if len(columns) == 0 {
		columns = simtaskhistory.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if sthq.sql != nil {
		selector = sthq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if sthq.ctx.Unique != nil && *sthq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range sthq.predicates {
		p(selector)
	}
	for _, p := range sthq.order {
		p(selector)
	}
	if offset := sthq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := sthq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SimTaskHistoryGroupBy is the group-by builder for SimTaskHistory entities.
type SimTaskHistoryGroupBy struct {
	selector
	build *SimTaskHistoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sthgb *SimTaskHistoryGroupBy) Aggregate(fns ...AggregateFunc) *SimTaskHistoryGroupBy {
	sthgb.fns = append(sthgb.fns, fns...)
	return sthgb
}

// Scan applies the selector query and scans the result into the given value.
func (sthgb *SimTaskHistoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sthgb.build.ctx, ent.OpQueryGroupBy)
	if err := sthgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SimTaskHistoryQuery, *SimTaskHistoryGroupBy](ctx, sthgb.build, sthgb, sthgb.build.inters, v)
}

func (sthgb *SimTaskHistoryGroupBy) sqlScan(ctx context.Context, root *SimTaskHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sthgb.fns))
	for _, fn := range sthgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sthgb.flds)+len(sthgb.fns))
		for _, f := range *sthgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sthgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sthgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SimTaskHistorySelect is the builder for selecting fields of SimTaskHistory entities.
type SimTaskHistorySelect struct {
	*SimTaskHistoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sths *SimTaskHistorySelect) Aggregate(fns ...AggregateFunc) *SimTaskHistorySelect {
	sths.fns = append(sths.fns, fns...)
	return sths
}

// Scan applies the selector query and scans the result into the given value.
func (sths *SimTaskHistorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sths.ctx, ent.OpQuerySelect)
	if err := sths.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SimTaskHistoryQuery, *SimTaskHistorySelect](ctx, sths.SimTaskHistoryQuery, sths, sths.inters, v)
}

func (sths *SimTaskHistorySelect) sqlScan(ctx context.Context, root *SimTaskHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sths.fns))
	for _, fn := range sths.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sths.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sths.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
