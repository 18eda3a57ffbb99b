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
	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// UserModelPreferenceQuery is the builder for querying UserModelPreference entities.
type UserModelPreferenceQuery struct {
	config
	ctx        *QueryContext
	order      []usermodelpreference.OrderOption
	inters     []Interceptor
	predicates []predicate.UserModelPreference
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserModelPreferenceQuery builder.
func (umpq *UserModelPreferenceQuery) Where(ps ...predicate.UserModelPreference) *UserModelPreferenceQuery {
	umpq.predicates = append(umpq.predicates, ps...)
	return umpq
}

// Limit the number of records to be returned by this query.
func (umpq *UserModelPreferenceQuery) Limit(limit int) *UserModelPreferenceQuery {
	umpq.ctx.Limit = &limit
	return umpq
}

// Offset to start from.
func (umpq *UserModelPreferenceQuery) Offset(offset int) *UserModelPreferenceQuery {
	umpq.ctx.Offset = &offset
	return umpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (umpq *UserModelPreferenceQuery) Unique(unique bool) *UserModelPreferenceQuery {
	umpq.ctx.Unique = &unique
	return umpq
}

// Order specifies how the records should be ordered.
func (umpq *UserModelPreferenceQuery) Order(o ...usermodelpreference.OrderOption) *UserModelPreferenceQuery {
	umpq.order = append(umpq.order, o...)
	return umpq
}

// First returns the first UserModelPreference entity from the query.
// Returns a *NotFoundError when no UserModelPreference was found.
func (umpq *UserModelPreferenceQuery) First(ctx context.Context) (*UserModelPreference, error) {
	nodes, err := umpq.Limit(1).All(setContextOp(ctx, umpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{usermodelpreference.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) FirstX(ctx context.Context) *UserModelPreference {
	node, err := umpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserModelPreference ID from the query.
// Returns a *NotFoundError when no UserModelPreference ID was found.
func (umpq *UserModelPreferenceQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = umpq.Limit(1).IDs(setContextOp(ctx, umpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{usermodelpreference.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := umpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserModelPreference entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserModelPreference entity is found.
// Returns a *NotFoundError when no UserModelPreference entities are found.
func (umpq *UserModelPreferenceQuery) Only(ctx context.Context) (*UserModelPreference, error) {
	nodes, err := umpq.Limit(2).All(setContextOp(ctx, umpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{usermodelpreference.Label}
	default:
		return nil, &NotSingularError{usermodelpreference.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) OnlyX(ctx context.Context) *UserModelPreference {
	node, err := umpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserModelPreference ID in the query.
// Returns a *NotSingularError when more than one UserModelPreference ID is found.
// Returns a *NotFoundError when no entities are found.
func (umpq *UserModelPreferenceQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = umpq.Limit(2).IDs(setContextOp(ctx, umpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{usermodelpreference.Label}
	default:
		err = &NotSingularError{usermodelpreference.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := umpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserModelPreferences.
func (umpq *UserModelPreferenceQuery) All(ctx context.Context) ([]*UserModelPreference, error) {
	ctx = setContextOp(ctx, umpq.ctx, ent.OpQueryAll)
	if err := umpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserModelPreference, *UserModelPreferenceQuery]()
	return withInterceptors[[]*UserModelPreference](ctx, umpq, qr, umpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) AllX(ctx context.Context) []*UserModelPreference {
	nodes, err := umpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserModelPreference IDs.
func (umpq *UserModelPreferenceQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if umpq.ctx.Unique == nil && umpq.path != nil {
		umpq.Unique(true)
	}
	ctx = setContextOp(ctx, umpq.ctx, ent.OpQueryIDs)
	if err = umpq.Select(usermodelpreference.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := umpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (umpq *UserModelPreferenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, umpq.ctx, ent.OpQueryCount)
	if err := umpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, umpq, querierCount[*UserModelPreferenceQuery](), umpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) CountX(ctx context.Context) int {
	count, err := umpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (umpq *UserModelPreferenceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, umpq.ctx, ent.OpQueryExist)
	switch _, err := umpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (umpq *UserModelPreferenceQuery) ExistX(ctx context.Context) bool {
	exist, err := umpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserModelPreferenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (umpq *UserModelPreferenceQuery) Clone() *UserModelPreferenceQuery {
	if umpq == nil {
		return nil
	}
	return &UserModelPreferenceQuery{
		config:     umpq.config,
		ctx:        umpq.ctx.Clone(),
		order:      append([]usermodelpreference.OrderOption{}, umpq.order...),
		inters:     append([]Interceptor{}, umpq.inters...),
		predicates: append([]predicate.UserModelPreference{}, umpq.predicates...),
		// clone intermediate query.
		sql:  umpq.sql.Clone(),
		path: umpq.path,
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
//	client.UserModelPreference.Query().
//		GroupBy(usermodelpreference.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (umpq *UserModelPreferenceQuery) GroupBy(field string, fields ...string) *UserModelPreferenceGroupBy {
	umpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserModelPreferenceGroupBy{build: umpq}
	grbuild.flds = &umpq.ctx.Fields
	grbuild.label = usermodelpreference.Label
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
//	client.UserModelPreference.Query().
//		Select(usermodelpreference.FieldUserID).
//		Scan(ctx, &v)
func (umpq *UserModelPreferenceQuery) Select(fields ...string) *UserModelPreferenceSelect {
	umpq.ctx.Fields = append(umpq.ctx.Fields, fields...)
	sbuild := &UserModelPreferenceSelect{UserModelPreferenceQuery: umpq}
	sbuild.label = usermodelpreference.Label
	sbuild.flds, sbuild.scan = &umpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserModelPreferenceSelect configured with the given aggregations.
func (umpq *UserModelPreferenceQuery) Aggregate(fns ...AggregateFunc) *UserModelPreferenceSelect {
	return umpq.Select().Aggregate(fns...)
}

func (umpq *UserModelPreferenceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range umpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, umpq); err != nil {
				return err
			}
		}
	}
	for _, f := range umpq.ctx.Fields {
		if !usermodelpreference.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if umpq.path != nil {
		prev, err := umpq.path(ctx)
		if err != nil {
			return err
		}
		umpq.sql = prev
	}
	return nil
}

func (umpq *UserModelPreferenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserModelPreference, error) {
	var (
		nodes = []*UserModelPreference{}
		_spec = umpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserModelPreference).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserModelPreference{config: umpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, umpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (umpq *UserModelPreferenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := umpq.querySpec()
	_spec.Node.Columns = umpq.ctx.Fields
	if len(umpq.ctx.Fields) > 0 {
		_spec.Unique = umpq.ctx.Unique != nil && *umpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, umpq.driver, _spec)
}

func (umpq *UserModelPreferenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(usermodelpreference.Table, usermodelpreference.Columns, sqlgraph.NewFieldSpec(usermodelpreference.FieldID, field.TypeUUID))
	_spec.From = umpq.sql
	if unique := umpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if umpq.path != nil {
		_spec.Unique = true
	}
	if fields := umpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usermodelpreference.FieldID)
		for i := range fields {
			if fields[i] != usermodelpreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := umpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := umpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := umpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := umpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (umpq *UserModelPreferenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(umpq.driver.Dialect())
	t1 := builder.Table(usermodelpreference.Table)
	columns := umpq.ctx.Fields
	if len(columns) == 0 {
		columns = usermodelpreference.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if umpq.sql != nil {
		selector = umpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if umpq.ctx.Unique != nil && *umpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range umpq.predicates {
		p(selector)
	}
	for _, p := range umpq.order {
		p(selector)
	}
	if offset := umpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := umpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserModelPreferenceGroupBy is the group-by builder for UserModelPreference entities.
type UserModelPreferenceGroupBy struct {
	selector
	build *UserModelPreferenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (umpgb *UserModelPreferenceGroupBy) Aggregate(fns ...AggregateFunc) *UserModelPreferenceGroupBy {
	umpgb.fns = append(umpgb.fns, fns...)
	return umpgb
}

// Scan applies the selector query and scans the result into the given value.
func (umpgb *UserModelPreferenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, umpgb.build.ctx, ent.OpQueryGroupBy)
	if err := umpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserModelPreferenceQuery, *UserModelPreferenceGroupBy](ctx, umpgb.build, umpgb, umpgb.build.inters, v)
}

func (umpgb *UserModelPreferenceGroupBy) sqlScan(ctx context.Context, root *UserModelPreferenceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(umpgb.fns))
	for _, fn := range umpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*umpgb.flds)+len(umpgb.fns))
		for _, f := range *umpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*umpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := umpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserModelPreferenceSelect is the builder for selecting fields of UserModelPreference entities.
type UserModelPreferenceSelect struct {
	*UserModelPreferenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (umps *UserModelPreferenceSelect) Aggregate(fns ...AggregateFunc) *UserModelPreferenceSelect {
	umps.fns = append(umps.fns, fns...)
	return umps
}

// Scan applies the selector query and scans the result into the given value.
func (umps *UserModelPreferenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, umps.ctx, ent.OpQuerySelect)
	if err := umps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserModelPreferenceQuery, *UserModelPreferenceSelect](ctx, umps.UserModelPreferenceQuery, umps, umps.inters, v)
}

func (umps *UserModelPreferenceSelect) sqlScan(ctx context.Context, root *UserModelPreferenceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(umps.fns))
	for _, fn := range umps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*umps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := umps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
