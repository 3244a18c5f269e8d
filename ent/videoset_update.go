// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/EAGLE1309/placecraft-sub002/ent/predicate"
	"github.com/EAGLE1309/placecraft-sub002/ent/videoset"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// VideoSetUpdate is the builder for updating VideoSet entities.
type VideoSetUpdate struct {
	config
	hooks    []Hook
	mutation *VideoSetMutation
}

// Where appends a list predicates to the VideoSetUpdate builder.
func (_u *VideoSetUpdate) Where(ps ...predicate.VideoSet) *VideoSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVideos sets the "videos" field.
func (_u *VideoSetUpdate) SetVideos(v []types.Video) *VideoSetUpdate {
	_u.mutation.SetVideos(v)
	return _u
}

// AppendVideos appends value to the "videos" field.
func (_u *VideoSetUpdate) AppendVideos(v []types.Video) *VideoSetUpdate {
	_u.mutation.AppendVideos(v)
	return _u
}

// SetFallbackURL sets the "fallback_url" field.
func (_u *VideoSetUpdate) SetFallbackURL(v string) *VideoSetUpdate {
	_u.mutation.SetFallbackURL(v)
	return _u
}

// SetNillableFallbackURL sets the "fallback_url" field if the given value is not nil.
func (_u *VideoSetUpdate) SetNillableFallbackURL(v *string) *VideoSetUpdate {
	if v != nil {
		_u.SetFallbackURL(*v)
	}
	return _u
}

// Mutation returns the VideoSetMutation object of the builder.
func (_u *VideoSetUpdate) Mutation() *VideoSetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VideoSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VideoSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VideoSetUpdate) check() error {
	if v, ok := _u.mutation.FallbackURL(); ok {
		if err := videoset.FallbackURLValidator(v); err != nil {
			return &ValidationError{Name: "fallback_url", err: fmt.Errorf(`ent: validator failed for field "VideoSet.fallback_url": %w`, err)}
		}
	}
	return nil
}

func (_u *VideoSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(videoset.Table, videoset.Columns, sqlgraph.NewFieldSpec(videoset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Videos(); ok {
		_spec.SetField(videoset.FieldVideos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, videoset.FieldVideos, value)
		})
	}
	if value, ok := _u.mutation.FallbackURL(); ok {
		_spec.SetField(videoset.FieldFallbackURL, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{videoset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VideoSetUpdateOne is the builder for updating a single VideoSet entity.
type VideoSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VideoSetMutation
}

// SetVideos sets the "videos" field.
func (_u *VideoSetUpdateOne) SetVideos(v []types.Video) *VideoSetUpdateOne {
	_u.mutation.SetVideos(v)
	return _u
}

// AppendVideos appends value to the "videos" field.
func (_u *VideoSetUpdateOne) AppendVideos(v []types.Video) *VideoSetUpdateOne {
	_u.mutation.AppendVideos(v)
	return _u
}

// SetFallbackURL sets the "fallback_url" field.
func (_u *VideoSetUpdateOne) SetFallbackURL(v string) *VideoSetUpdateOne {
	_u.mutation.SetFallbackURL(v)
	return _u
}

// SetNillableFallbackURL sets the "fallback_url" field if the given value is not nil.
func (_u *VideoSetUpdateOne) SetNillableFallbackURL(v *string) *VideoSetUpdateOne {
	if v != nil {
		_u.SetFallbackURL(*v)
	}
	return _u
}

// Mutation returns the VideoSetMutation object of the builder.
func (_u *VideoSetUpdateOne) Mutation() *VideoSetMutation {
	return _u.mutation
}

// Where appends a list predicates to the VideoSetUpdate builder.
func (_u *VideoSetUpdateOne) Where(ps ...predicate.VideoSet) *VideoSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VideoSetUpdateOne) Select(field string, fields ...string) *VideoSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VideoSet entity.
func (_u *VideoSetUpdateOne) Save(ctx context.Context) (*VideoSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoSetUpdateOne) SaveX(ctx context.Context) *VideoSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VideoSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VideoSetUpdateOne) check() error {
	if v, ok := _u.mutation.FallbackURL(); ok {
		if err := videoset.FallbackURLValidator(v); err != nil {
			return &ValidationError{Name: "fallback_url", err: fmt.Errorf(`ent: validator failed for field "VideoSet.fallback_url": %w`, err)}
		}
	}
	return nil
}

func (_u *VideoSetUpdateOne) sqlSave(ctx context.Context) (_node *VideoSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(videoset.Table, videoset.Columns, sqlgraph.NewFieldSpec(videoset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VideoSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, videoset.FieldID)
		for _, f := range fields {
			if !videoset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != videoset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Videos(); ok {
		_spec.SetField(videoset.FieldVideos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, videoset.FieldVideos, value)
		})
	}
	if value, ok := _u.mutation.FallbackURL(); ok {
		_spec.SetField(videoset.FieldFallbackURL, field.TypeString, value)
	}
	_node = &VideoSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{videoset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
