// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/EAGLE1309/placecraft-sub002/ent/progress"
	"github.com/google/uuid"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *ProgressCreate) SetStudentID(v string) *ProgressCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *ProgressCreate) SetSubjectID(v uuid.UUID) *ProgressCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *ProgressCreate) SetSubjectName(v string) *ProgressCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableSubjectName(v *string) *ProgressCreate {
	if v != nil {
		_c.SetSubjectName(*v)
	}
	return _c
}

// SetTotalChapters sets the "total_chapters" field.
func (_c *ProgressCreate) SetTotalChapters(v int) *ProgressCreate {
	_c.mutation.SetTotalChapters(v)
	return _c
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableTotalChapters(v *int) *ProgressCreate {
	if v != nil {
		_c.SetTotalChapters(*v)
	}
	return _c
}

// SetCompletedChapterIds sets the "completed_chapter_ids" field.
func (_c *ProgressCreate) SetCompletedChapterIds(v []string) *ProgressCreate {
	_c.mutation.SetCompletedChapterIds(v)
	return _c
}

// SetNotesViewedChapterIds sets the "notes_viewed_chapter_ids" field.
func (_c *ProgressCreate) SetNotesViewedChapterIds(v []string) *ProgressCreate {
	_c.mutation.SetNotesViewedChapterIds(v)
	return _c
}

// SetVideosViewedChapterIds sets the "videos_viewed_chapter_ids" field.
func (_c *ProgressCreate) SetVideosViewedChapterIds(v []string) *ProgressCreate {
	_c.mutation.SetVideosViewedChapterIds(v)
	return _c
}

// SetPercentComplete sets the "percent_complete" field.
func (_c *ProgressCreate) SetPercentComplete(v int) *ProgressCreate {
	_c.mutation.SetPercentComplete(v)
	return _c
}

// SetNillablePercentComplete sets the "percent_complete" field if the given value is not nil.
func (_c *ProgressCreate) SetNillablePercentComplete(v *int) *ProgressCreate {
	if v != nil {
		_c.SetPercentComplete(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProgressCreate) SetStatus(v progress.Status) *ProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableStatus(v *progress.Status) *ProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProgressCreate) SetStartedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableStartedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProgressCreate) SetCompletedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCompletedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.SubjectName(); !ok {
		v := progress.DefaultSubjectName
		_c.mutation.SetSubjectName(v)
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		v := progress.DefaultTotalChapters
		_c.mutation.SetTotalChapters(v)
	}
	if _, ok := _c.mutation.PercentComplete(); !ok {
		v := progress.DefaultPercentComplete
		_c.mutation.SetPercentComplete(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := progress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := progress.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Progress.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := progress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Progress.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Progress.subject_id"`)}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "Progress.subject_name"`)}
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		return &ValidationError{Name: "total_chapters", err: errors.New(`ent: missing required field "Progress.total_chapters"`)}
	}
	if v, ok := _c.mutation.TotalChapters(); ok {
		if err := progress.TotalChaptersValidator(v); err != nil {
			return &ValidationError{Name: "total_chapters", err: fmt.Errorf(`ent: validator failed for field "Progress.total_chapters": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PercentComplete(); !ok {
		return &ValidationError{Name: "percent_complete", err: errors.New(`ent: missing required field "Progress.percent_complete"`)}
	}
	if v, ok := _c.mutation.PercentComplete(); ok {
		if err := progress.PercentCompleteValidator(v); err != nil {
			return &ValidationError{Name: "percent_complete", err: fmt.Errorf(`ent: validator failed for field "Progress.percent_complete": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Progress.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := progress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Progress.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Progress.started_at"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(progress.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(progress.FieldSubjectID, field.TypeUUID, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(progress.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.TotalChapters(); ok {
		_spec.SetField(progress.FieldTotalChapters, field.TypeInt, value)
		_node.TotalChapters = value
	}
	if value, ok := _c.mutation.CompletedChapterIds(); ok {
		_spec.SetField(progress.FieldCompletedChapterIds, field.TypeJSON, value)
		_node.CompletedChapterIds = value
	}
	if value, ok := _c.mutation.NotesViewedChapterIds(); ok {
		_spec.SetField(progress.FieldNotesViewedChapterIds, field.TypeJSON, value)
		_node.NotesViewedChapterIds = value
	}
	if value, ok := _c.mutation.VideosViewedChapterIds(); ok {
		_spec.SetField(progress.FieldVideosViewedChapterIds, field.TypeJSON, value)
		_node.VideosViewedChapterIds = value
	}
	if value, ok := _c.mutation.PercentComplete(); ok {
		_spec.SetField(progress.FieldPercentComplete, field.TypeInt, value)
		_node.PercentComplete = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(progress.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(progress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(progress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
