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
	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// AnsweredIndexQuery is the builder for querying AnsweredIndex entities.
type AnsweredIndexQuery struct {
	config
	ctx        *QueryContext
	order      []answeredindex.OrderOption
	inters     []Interceptor
	predicates []predicate.AnsweredIndex
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnsweredIndexQuery builder.
func (aiq *AnsweredIndexQuery) Where(ps ...predicate.AnsweredIndex) *AnsweredIndexQuery {
	aiq.predicates = append(aiq.predicates, ps...)
	return aiq
}

// Limit the number of records to be returned by this query.
func (aiq *AnsweredIndexQuery) Limit(limit int) *AnsweredIndexQuery {
	aiq.ctx.Limit = &limit
	return aiq
}

// Offset to start from.
func (aiq *AnsweredIndexQuery) Offset(offset int) *AnsweredIndexQuery {
	aiq.ctx.Offset = &offset
	return aiq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aiq *AnsweredIndexQuery) Unique(unique bool) *AnsweredIndexQuery {
	aiq.ctx.Unique = &unique
	return aiq
}

// Order specifies how the records should be ordered.
func (aiq *AnsweredIndexQuery) Order(o ...answeredindex.OrderOption) *AnsweredIndexQuery {
	aiq.order = append(aiq.order, o...)
	return aiq
}

// First returns the first AnsweredIndex entity from the query.
// Returns a *NotFoundError when no AnsweredIndex was found.
func (aiq *AnsweredIndexQuery) First(ctx context.Context) (*AnsweredIndex, error) {
	nodes, err := aiq.Limit(1).All(setContextOp(ctx, aiq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{answeredindex.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) FirstX(ctx context.Context) *AnsweredIndex {
	node, err := aiq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AnsweredIndex ID from the query.
// Returns a *NotFoundError when no AnsweredIndex ID was found.
func (aiq *AnsweredIndexQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = aiq.Limit(1).IDs(setContextOp(ctx, aiq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{answeredindex.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) FirstIDX(ctx context.Context) int {
	id, err := aiq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AnsweredIndex entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AnsweredIndex entity is found.
// Returns a *NotFoundError when no AnsweredIndex entities are found.
func (aiq *AnsweredIndexQuery) Only(ctx context.Context) (*AnsweredIndex, error) {
	nodes, err := aiq.Limit(2).All(setContextOp(ctx, aiq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{answeredindex.Label}
	default:
		return nil, &NotSingularError{answeredindex.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) OnlyX(ctx context.Context) *AnsweredIndex {
	node, err := aiq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AnsweredIndex ID in the query.
// Returns a *NotSingularError when more than one AnsweredIndex ID is found.
// Returns a *NotFoundError when no entities are found.
func (aiq *AnsweredIndexQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = aiq.Limit(2).IDs(setContextOp(ctx, aiq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{answeredindex.Label}
	default:
		err = &NotSingularError{answeredindex.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) OnlyIDX(ctx context.Context) int {
	id, err := aiq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AnsweredIndexes.
func (aiq *AnsweredIndexQuery) All(ctx context.Context) ([]*AnsweredIndex, error) {
	ctx = setContextOp(ctx, aiq.ctx, ent.OpQueryAll)
	if err := aiq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AnsweredIndex, *AnsweredIndexQuery]()
	return withInterceptors[[]*AnsweredIndex](ctx, aiq, qr, aiq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) AllX(ctx context.Context) []*AnsweredIndex {
	nodes, err := aiq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AnsweredIndex IDs.
func (aiq *AnsweredIndexQuery) IDs(ctx context.Context) (ids []int, err error) {
	if aiq.ctx.Unique == nil && aiq.path != nil {
		aiq.Unique(true)
	}
	ctx = setContextOp(ctx, aiq.ctx, ent.OpQueryIDs)
	if err = aiq.Select(answeredindex.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) IDsX(ctx context.Context) []int {
	ids, err := aiq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aiq *AnsweredIndexQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aiq.ctx, ent.OpQueryCount)
	if err := aiq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aiq, querierCount[*AnsweredIndexQuery](), aiq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) CountX(ctx context.Context) int {
	count, err := aiq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aiq *AnsweredIndexQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aiq.ctx, ent.OpQueryExist)
	switch _, err := aiq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aiq *AnsweredIndexQuery) ExistX(ctx context.Context) bool {
	exist, err := aiq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnsweredIndexQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aiq *AnsweredIndexQuery) Clone() *AnsweredIndexQuery {
	if aiq == nil {
		return nil
	}
	return &AnsweredIndexQuery{
		config:     aiq.config,
		ctx:        aiq.ctx.Clone(),
		order:      append([]answeredindex.OrderOption{}, aiq.order...),
		inters:     append([]Interceptor{}, aiq.inters...),
		predicates: append([]predicate.AnsweredIndex{}, aiq.predicates...),
		// clone intermediate query.
		sql:  aiq.sql.Clone(),
		path: aiq.path,
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
//	client.AnsweredIndex.Query().
//		GroupBy(answeredindex.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aiq *AnsweredIndexQuery) GroupBy(field string, fields ...string) *AnsweredIndexGroupBy {
	aiq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnsweredIndexGroupBy{build: aiq}
	grbuild.flds = &aiq.ctx.Fields
	grbuild.label = answeredindex.Label
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
//	client.AnsweredIndex.Query().
//		Select(answeredindex.FieldUserID).
//		Scan(ctx, &v)
func (aiq *AnsweredIndexQuery) Select(fields ...string) *AnsweredIndexSelect {
	aiq.ctx.Fields = append(aiq.ctx.Fields, fields...)
	sbuild := &AnsweredIndexSelect{AnsweredIndexQuery: aiq}
	sbuild.label = answeredindex.Label
	sbuild.flds, sbuild.scan = &aiq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnsweredIndexSelect configured with the given aggregations.
func (aiq *AnsweredIndexQuery) Aggregate(fns ...AggregateFunc) *AnsweredIndexSelect {
	return aiq.Select().Aggregate(fns...)
}

func (aiq *AnsweredIndexQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aiq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aiq); err != nil {
				return err
			}
		}
	}
	for _, f := range aiq.ctx.Fields {
		if !answeredindex.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aiq.path != nil {
		prev, err := aiq.path(ctx)
		if err != nil {
			return err
		}
		aiq.sql = prev
	}
	return nil
}

func (aiq *AnsweredIndexQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AnsweredIndex, error) {
	var (
		nodes = []*AnsweredIndex{}
		_spec = aiq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AnsweredIndex).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AnsweredIndex{config: aiq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aiq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (aiq *AnsweredIndexQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aiq.querySpec()
	_spec.Node.Columns = aiq.ctx.Fields
	if len(aiq.ctx.Fields) > 0 {
		_spec.Unique = aiq.ctx.Unique != nil && *aiq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aiq.driver, _spec)
}

func (aiq *AnsweredIndexQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(answeredindex.Table, answeredindex.Columns, sqlgraph.NewFieldSpec(answeredindex.FieldID, field.TypeInt))
	_spec.From = aiq.sql
	if unique := aiq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aiq.path != nil {
		_spec.Unique = true
	}
	if fields := aiq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answeredindex.FieldID)
		for i := range fields {
			if fields[i] != answeredindex.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := aiq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aiq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aiq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aiq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aiq *AnsweredIndexQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aiq.driver.Dialect())
	t1 := builder.Table(answeredindex.Table)
	columns := aiq.ctx.Fields
	if len(columns) == 0 {
		columns = answeredindex.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aiq.sql != nil {
		selector = aiq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aiq.ctx.Unique != nil && *aiq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aiq.predicates {
		p(selector)
	}
	for _, p := range aiq.order {
		p(selector)
	}
	if offset := aiq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aiq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AnsweredIndexGroupBy is the group-by builder for AnsweredIndex entities.
type AnsweredIndexGroupBy struct {
	selector
	build *AnsweredIndexQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (aigb *AnsweredIndexGroupBy) Aggregate(fns ...AggregateFunc) *AnsweredIndexGroupBy {
	aigb.fns = append(aigb.fns, fns...)
	return aigb
}

// Scan applies the selector query and scans the result into the given value.
func (aigb *AnsweredIndexGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aigb.build.ctx, ent.OpQueryGroupBy)
	if err := aigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnsweredIndexQuery, *AnsweredIndexGroupBy](ctx, aigb.build, aigb, aigb.build.inters, v)
}

func (aigb *AnsweredIndexGroupBy) sqlScan(ctx context.Context, root *AnsweredIndexQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(aigb.fns))
	for _, fn := range aigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*aigb.flds)+len(aigb.fns))
		for _, f := range *aigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*aigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AnsweredIndexSelect is the builder for selecting fields of AnsweredIndex entities.
type AnsweredIndexSelect struct {
	*AnsweredIndexQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ais *AnsweredIndexSelect) Aggregate(fns ...AggregateFunc) *AnsweredIndexSelect {
	ais.fns = append(ais.fns, fns...)
	return ais
}

// Scan applies the selector query and scans the result into the given value.
func (ais *AnsweredIndexSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ais.ctx, ent.OpQuerySelect)
	if err := ais.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnsweredIndexQuery, *AnsweredIndexSelect](ctx, ais.AnsweredIndexQuery, ais, ais.inters, v)
}

func (ais *AnsweredIndexSelect) sqlScan(ctx context.Context, root *AnsweredIndexQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ais.fns))
	for _, fn := range ais.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ais.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ais.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
