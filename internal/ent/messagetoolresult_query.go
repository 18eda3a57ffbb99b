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
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
)

// MessageToolResultQuery is the builder for querying MessageToolResult entities.
type MessageToolResultQuery struct {
	config
	ctx        *QueryContext
	order      []messagetoolresult.OrderOption
	inters     []Interceptor
	predicates []predicate.MessageToolResult
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MessageToolResultQuery builder.
func (mtrq *MessageToolResultQuery) Where(ps ...predicate.MessageToolResult) *MessageToolResultQuery {
	mtrq.predicates = append(mtrq.predicates, ps...)
	return mtrq
}

// Limit the number of records to be returned by this query.
func (mtrq *MessageToolResultQuery) Limit(limit int) *MessageToolResultQuery {
	mtrq.ctx.Limit = &limit
	return mtrq
}

// Offset to start from.
func (mtrq *MessageToolResultQuery) Offset(offset int) *MessageToolResultQuery {
	mtrq.ctx.Offset = &offset
	return mtrq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (mtrq *MessageToolResultQuery) Unique(unique bool) *MessageToolResultQuery {
	mtrq.ctx.Unique = &unique
	return mtrq
}

// Order specifies how the records should be ordered.
func (mtrq *MessageToolResultQuery) Order(o ...messagetoolresult.OrderOption) *MessageToolResultQuery {
	mtrq.order = append(mtrq.order, o...)
	return mtrq
}

// First returns the first MessageToolResult entity from the query.
// Returns a *NotFoundError when no MessageToolResult was found.
func (mtrq *MessageToolResultQuery) First(ctx context.Context) (*MessageToolResult, error) {
	nodes, err := mtrq.Limit(1).All(setContextOp(ctx, mtrq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{messagetoolresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) FirstX(ctx context.Context) *MessageToolResult {
	node, err := mtrq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MessageToolResult ID from the query.
// Returns a *NotFoundError when no MessageToolResult ID was found.
func (mtrq *MessageToolResultQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = mtrq.Limit(1).IDs(setContextOp(ctx, mtrq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{messagetoolresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := mtrq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MessageToolResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MessageToolResult entity is found.
// Returns a *NotFoundError when no MessageToolResult entities are found.
func (mtrq *MessageToolResultQuery) Only(ctx context.Context) (*MessageToolResult, error) {
	nodes, err := mtrq.Limit(2).All(setContextOp(ctx, mtrq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{messagetoolresult.Label}
	default:
		return nil, &NotSingularError{messagetoolresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) OnlyX(ctx context.Context) *MessageToolResult {
	node, err := mtrq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MessageToolResult ID in the query.
// Returns a *NotSingularError when more than one MessageToolResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (mtrq *MessageToolResultQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = mtrq.Limit(2).IDs(setContextOp(ctx, mtrq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{messagetoolresult.Label}
	default:
		err = &NotSingularError{messagetoolresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := mtrq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MessageToolResults.
func (mtrq *MessageToolResultQuery) All(ctx context.Context) ([]*MessageToolResult, error) {
	ctx = setContextOp(ctx, mtrq.ctx, ent.OpQueryAll)
	if err := mtrq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MessageToolResult, *MessageToolResultQuery]()
	return withInterceptors[[]*MessageToolResult](ctx, mtrq, qr, mtrq.inters)
}

// AllX is like All, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) AllX(ctx context.Context) []*MessageToolResult {
	nodes, err := mtrq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MessageToolResult IDs.
func (mtrq *MessageToolResultQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if mtrq.ctx.Unique == nil && mtrq.path != nil {
		mtrq.Unique(true)
	}
	ctx = setContextOp(ctx, mtrq.ctx, ent.OpQueryIDs)
	if err = mtrq.Select(messagetoolresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := mtrq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (mtrq *MessageToolResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, mtrq.ctx, ent.OpQueryCount)
	if err := mtrq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, mtrq, querierCount[*MessageToolResultQuery](), mtrq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) CountX(ctx context.Context) int {
	count, err := mtrq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (mtrq *MessageToolResultQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, mtrq.ctx, ent.OpQueryExist)
	switch _, err := mtrq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (mtrq *MessageToolResultQuery) ExistX(ctx context.Context) bool {
	exist, err := mtrq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MessageToolResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (mtrq *MessageToolResultQuery) Clone() *MessageToolResultQuery {
	if mtrq == nil {
		return nil
	}
	return &MessageToolResultQuery{
		config:     mtrq.config,
		ctx:        mtrq.ctx.Clone(),
		order:      append([]messagetoolresult.OrderOption{}, mtrq.order...),
		inters:     append([]Interceptor{}, mtrq.inters...),
		predicates: append([]predicate.MessageToolResult{}, mtrq.predicates...),
		// clone intermediate query.
		sql:  mtrq.sql.Clone(),
		path: mtrq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		MessageID uuid.UUID `json:"message_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MessageToolResult.Query().
//		GroupBy(messagetoolresult.FieldMessageID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (mtrq *MessageToolResultQuery) GroupBy(field string, fields ...string) *MessageToolResultGroupBy {
	mtrq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MessageToolResultGroupBy{build: mtrq}
	grbuild.flds = &mtrq.ctx.Fields
	grbuild.label = messagetoolresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		MessageID uuid.UUID `json:"message_id,omitempty"`
//	}
//
//	client.MessageToolResult.Query().
//		Select(messagetoolresult.FieldMessageID).
//		Scan(ctx, &v)
func (mtrq *MessageToolResultQuery) Select(fields ...string) *MessageToolResultSelect {
	mtrq.ctx.Fields = append(mtrq.ctx.Fields, fields...)
	sbuild := &MessageToolResultSelect{MessageToolResultQuery: mtrq}
	sbuild.label = messagetoolresult.Label
	sbuild.flds, sbuild.scan = &mtrq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MessageToolResultSelect configured with the given aggregations.
func (mtrq *MessageToolResultQuery) Aggregate(fns ...AggregateFunc) *MessageToolResultSelect {
	return mtrq.Select().Aggregate(fns...)
}

func (mtrq *MessageToolResultQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range mtrq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, mtrq); err != nil {
				return err
			}
		}
	}
	for _, f := range mtrq.ctx.Fields {
		if !messagetoolresult.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if mtrq.path != nil {
		prev, err := mtrq.path(ctx)
		if err != nil {
			return err
		}
		mtrq.sql = prev
	}
	return nil
}

func (mtrq *MessageToolResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MessageToolResult, error) {
	var (
		nodes = []*MessageToolResult{}
		_spec = mtrq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MessageToolResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MessageToolResult{config: mtrq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, mtrq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (mtrq *MessageToolResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := mtrq.querySpec()
	_spec.Node.Columns = mtrq.ctx.Fields
	if len(mtrq.ctx.Fields) > 0 {
		_spec.Unique = mtrq.ctx.Unique != nil && *mtrq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, mtrq.driver, _spec)
}

func (mtrq *MessageToolResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(messagetoolresult.Table, messagetoolresult.Columns, sqlgraph.NewFieldSpec(messagetoolresult.FieldID, field.TypeUUID))
	_spec.From = mtrq.sql
	if unique := mtrq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if mtrq.path != nil {
		_spec.Unique = true
	}
	if fields := mtrq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagetoolresult.FieldID)
		for i := range fields {
			if fields[i] != messagetoolresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := mtrq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := mtrq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := mtrq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := mtrq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (mtrq *MessageToolResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(mtrq.driver.Dialect())
	t1 := builder.Table(messagetoolresult.Table)
	columns := mtrq.ctx.Fields
	if len(columns) == 0 {
		columns = messagetoolresult.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if mtrq.sql != nil {
		selector = mtrq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if mtrq.ctx.Unique != nil && *mtrq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range mtrq.predicates {
		p(selector)
	}
	for _, p := range mtrq.order {
		p(selector)
	}
	if offset := mtrq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := mtrq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MessageToolResultGroupBy is the group-by builder for MessageToolResult entities.
type MessageToolResultGroupBy struct {
	selector
	build *MessageToolResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (mtrgb *MessageToolResultGroupBy) Aggregate(fns ...AggregateFunc) *MessageToolResultGroupBy {
	mtrgb.fns = append(mtrgb.fns, fns...)
	return mtrgb
}

// Scan applies the selector query and scans the result into the given value.
func (mtrgb *MessageToolResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mtrgb.build.ctx, ent.OpQueryGroupBy)
	if err := mtrgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MessageToolResultQuery, *MessageToolResultGroupBy](ctx, mtrgb.build, mtrgb, mtrgb.build.inters, v)
}

func (mtrgb *MessageToolResultGroupBy) sqlScan(ctx context.Context, root *MessageToolResultQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(mtrgb.fns))
	for _, fn := range mtrgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*mtrgb.flds)+len(mtrgb.fns))
		for _, f := range *mtrgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*mtrgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mtrgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MessageToolResultSelect is the builder for selecting fields of MessageToolResult entities.
type MessageToolResultSelect struct {
	*MessageToolResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (mtrs *MessageToolResultSelect) Aggregate(fns ...AggregateFunc) *MessageToolResultSelect {
	mtrs.fns = append(mtrs.fns, fns...)
	return mtrs
}

// Scan applies the selector query and scans the result into the given value.
func (mtrs *MessageToolResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mtrs.ctx, ent.OpQuerySelect)
	if err := mtrs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MessageToolResultQuery, *MessageToolResultSelect](ctx, mtrs.MessageToolResultQuery, mtrs, mtrs.inters, v)
}

func (mtrs *MessageToolResultSelect) sqlScan(ctx context.Context, root *MessageToolResultQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(mtrs.fns))
	for _, fn := range mtrs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*mtrs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mtrs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
