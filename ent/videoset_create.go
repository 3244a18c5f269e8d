// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/EAGLE1309/placecraft-sub002/ent/videoset"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
	"github.com/google/uuid"
)

// VideoSetCreate is the builder for creating a VideoSet entity.
type VideoSetCreate struct {
	config
	mutation *VideoSetMutation
	hooks    []Hook
}

// SetChapterID sets the "chapter_id" field.
func (_c *VideoSetCreate) SetChapterID(v uuid.UUID) *VideoSetCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetVideos sets the "videos" field.
func (_c *VideoSetCreate) SetVideos(v []types.Video) *VideoSetCreate {
	_c.mutation.SetVideos(v)
	return _c
}

// SetFallbackURL sets the "fallback_url" field.
func (_c *VideoSetCreate) SetFallbackURL(v string) *VideoSetCreate {
	_c.mutation.SetFallbackURL(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *VideoSetCreate) SetFetchedAt(v time.Time) *VideoSetCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *VideoSetCreate) SetNillableFetchedAt(v *time.Time) *VideoSetCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// Mutation returns the VideoSetMutation object of the builder.
func (_c *VideoSetCreate) Mutation() *VideoSetMutation {
	return _c.mutation
}

// Save creates the VideoSet in the database.
func (_c *VideoSetCreate) Save(ctx context.Context) (*VideoSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VideoSetCreate) SaveX(ctx context.Context) *VideoSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VideoSetCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := videoset.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VideoSetCreate) check() error {
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "VideoSet.chapter_id"`)}
	}
	if _, ok := _c.mutation.Videos(); !ok {
		return &ValidationError{Name: "videos", err: errors.New(`ent: missing required field "VideoSet.videos"`)}
	}
	if _, ok := _c.mutation.FallbackURL(); !ok {
		return &ValidationError{Name: "fallback_url", err: errors.New(`ent: missing required field "VideoSet.fallback_url"`)}
	}
	if v, ok := _c.mutation.FallbackURL(); ok {
		if err := videoset.FallbackURLValidator(v); err != nil {
			return &ValidationError{Name: "fallback_url", err: fmt.Errorf(`ent: validator failed for field "VideoSet.fallback_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "VideoSet.fetched_at"`)}
	}
	return nil
}

func (_c *VideoSetCreate) sqlSave(ctx context.Context) (*VideoSet, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VideoSetCreate) createSpec() (*VideoSet, *sqlgraph.CreateSpec) {
	var (
		_node = &VideoSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(videoset.Table, sqlgraph.NewFieldSpec(videoset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChapterID(); ok {
		_spec.SetField(videoset.FieldChapterID, field.TypeUUID, value)
		_node.ChapterID = value
	}
	if value, ok := _c.mutation.Videos(); ok {
		_spec.SetField(videoset.FieldVideos, field.TypeJSON, value)
		_node.Videos = value
	}
	if value, ok := _c.mutation.FallbackURL(); ok {
		_spec.SetField(videoset.FieldFallbackURL, field.TypeString, value)
		_node.FallbackURL = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(videoset.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// VideoSetCreateBulk is the builder for creating many VideoSet entities in bulk.
type VideoSetCreateBulk struct {
	config
	err      error
	builders []*VideoSetCreate
}

// Save creates the VideoSet entities in the database.
func (_c *VideoSetCreateBulk) Save(ctx context.Context) ([]*VideoSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VideoSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VideoSetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VideoSetCreateBulk) SaveX(ctx context.Context) []*VideoSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
