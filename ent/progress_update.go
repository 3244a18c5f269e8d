// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/EAGLE1309/placecraft-sub002/ent/predicate"
	"github.com/EAGLE1309/placecraft-sub002/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *ProgressUpdate) SetSubjectName(v string) *ProgressUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableSubjectName(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *ProgressUpdate) SetTotalChapters(v int) *ProgressUpdate {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTotalChapters(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *ProgressUpdate) AddTotalChapters(v int) *ProgressUpdate {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetCompletedChapterIds sets the "completed_chapter_ids" field.
func (_u *ProgressUpdate) SetCompletedChapterIds(v []string) *ProgressUpdate {
	_u.mutation.SetCompletedChapterIds(v)
	return _u
}

// AppendCompletedChapterIds appends value to the "completed_chapter_ids" field.
func (_u *ProgressUpdate) AppendCompletedChapterIds(v []string) *ProgressUpdate {
	_u.mutation.AppendCompletedChapterIds(v)
	return _u
}

// ClearCompletedChapterIds clears the value of the "completed_chapter_ids" field.
func (_u *ProgressUpdate) ClearCompletedChapterIds() *ProgressUpdate {
	_u.mutation.ClearCompletedChapterIds()
	return _u
}

// SetNotesViewedChapterIds sets the "notes_viewed_chapter_ids" field.
func (_u *ProgressUpdate) SetNotesViewedChapterIds(v []string) *ProgressUpdate {
	_u.mutation.SetNotesViewedChapterIds(v)
	return _u
}

// AppendNotesViewedChapterIds appends value to the "notes_viewed_chapter_ids" field.
func (_u *ProgressUpdate) AppendNotesViewedChapterIds(v []string) *ProgressUpdate {
	_u.mutation.AppendNotesViewedChapterIds(v)
	return _u
}

// ClearNotesViewedChapterIds clears the value of the "notes_viewed_chapter_ids" field.
func (_u *ProgressUpdate) ClearNotesViewedChapterIds() *ProgressUpdate {
	_u.mutation.ClearNotesViewedChapterIds()
	return _u
}

// SetVideosViewedChapterIds sets the "videos_viewed_chapter_ids" field.
func (_u *ProgressUpdate) SetVideosViewedChapterIds(v []string) *ProgressUpdate {
	_u.mutation.SetVideosViewedChapterIds(v)
	return _u
}

// AppendVideosViewedChapterIds appends value to the "videos_viewed_chapter_ids" field.
func (_u *ProgressUpdate) AppendVideosViewedChapterIds(v []string) *ProgressUpdate {
	_u.mutation.AppendVideosViewedChapterIds(v)
	return _u
}

// ClearVideosViewedChapterIds clears the value of the "videos_viewed_chapter_ids" field.
func (_u *ProgressUpdate) ClearVideosViewedChapterIds() *ProgressUpdate {
	_u.mutation.ClearVideosViewedChapterIds()
	return _u
}

// SetPercentComplete sets the "percent_complete" field.
func (_u *ProgressUpdate) SetPercentComplete(v int) *ProgressUpdate {
	_u.mutation.ResetPercentComplete()
	_u.mutation.SetPercentComplete(v)
	return _u
}

// SetNillablePercentComplete sets the "percent_complete" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillablePercentComplete(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetPercentComplete(*v)
	}
	return _u
}

// AddPercentComplete adds value to the "percent_complete" field.
func (_u *ProgressUpdate) AddPercentComplete(v int) *ProgressUpdate {
	_u.mutation.AddPercentComplete(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressUpdate) SetStatus(v progress.Status) *ProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStatus(v *progress.Status) *ProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProgressUpdate) SetCompletedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompletedAt(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProgressUpdate) ClearCompletedAt() *ProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.TotalChapters(); ok {
		if err := progress.TotalChaptersValidator(v); err != nil {
			return &ValidationError{Name: "total_chapters", err: fmt.Errorf(`ent: validator failed for field "Progress.total_chapters": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PercentComplete(); ok {
		if err := progress.PercentCompleteValidator(v); err != nil {
			return &ValidationError{Name: "percent_complete", err: fmt.Errorf(`ent: validator failed for field "Progress.percent_complete": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := progress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Progress.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(progress.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(progress.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(progress.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedChapterIds(); ok {
		_spec.SetField(progress.FieldCompletedChapterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedChapterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldCompletedChapterIds, value)
		})
	}
	if _u.mutation.CompletedChapterIdsCleared() {
		_spec.ClearField(progress.FieldCompletedChapterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotesViewedChapterIds(); ok {
		_spec.SetField(progress.FieldNotesViewedChapterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotesViewedChapterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldNotesViewedChapterIds, value)
		})
	}
	if _u.mutation.NotesViewedChapterIdsCleared() {
		_spec.ClearField(progress.FieldNotesViewedChapterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.VideosViewedChapterIds(); ok {
		_spec.SetField(progress.FieldVideosViewedChapterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideosViewedChapterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldVideosViewedChapterIds, value)
		})
	}
	if _u.mutation.VideosViewedChapterIdsCleared() {
		_spec.ClearField(progress.FieldVideosViewedChapterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PercentComplete(); ok {
		_spec.SetField(progress.FieldPercentComplete, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentComplete(); ok {
		_spec.AddField(progress.FieldPercentComplete, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progress.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(progress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(progress.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetSubjectName sets the "subject_name" field.
func (_u *ProgressUpdateOne) SetSubjectName(v string) *ProgressUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableSubjectName(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *ProgressUpdateOne) SetTotalChapters(v int) *ProgressUpdateOne {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTotalChapters(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *ProgressUpdateOne) AddTotalChapters(v int) *ProgressUpdateOne {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetCompletedChapterIds sets the "completed_chapter_ids" field.
func (_u *ProgressUpdateOne) SetCompletedChapterIds(v []string) *ProgressUpdateOne {
	_u.mutation.SetCompletedChapterIds(v)
	return _u
}

// AppendCompletedChapterIds appends value to the "completed_chapter_ids" field.
func (_u *ProgressUpdateOne) AppendCompletedChapterIds(v []string) *ProgressUpdateOne {
	_u.mutation.AppendCompletedChapterIds(v)
	return _u
}

// ClearCompletedChapterIds clears the value of the "completed_chapter_ids" field.
func (_u *ProgressUpdateOne) ClearCompletedChapterIds() *ProgressUpdateOne {
	_u.mutation.ClearCompletedChapterIds()
	return _u
}

// SetNotesViewedChapterIds sets the "notes_viewed_chapter_ids" field.
func (_u *ProgressUpdateOne) SetNotesViewedChapterIds(v []string) *ProgressUpdateOne {
	_u.mutation.SetNotesViewedChapterIds(v)
	return _u
}

// AppendNotesViewedChapterIds appends value to the "notes_viewed_chapter_ids" field.
func (_u *ProgressUpdateOne) AppendNotesViewedChapterIds(v []string) *ProgressUpdateOne {
	_u.mutation.AppendNotesViewedChapterIds(v)
	return _u
}

// ClearNotesViewedChapterIds clears the value of the "notes_viewed_chapter_ids" field.
func (_u *ProgressUpdateOne) ClearNotesViewedChapterIds() *ProgressUpdateOne {
	_u.mutation.ClearNotesViewedChapterIds()
	return _u
}

// SetVideosViewedChapterIds sets the "videos_viewed_chapter_ids" field.
func (_u *ProgressUpdateOne) SetVideosViewedChapterIds(v []string) *ProgressUpdateOne {
	_u.mutation.SetVideosViewedChapterIds(v)
	return _u
}

// AppendVideosViewedChapterIds appends value to the "videos_viewed_chapter_ids" field.
func (_u *ProgressUpdateOne) AppendVideosViewedChapterIds(v []string) *ProgressUpdateOne {
	_u.mutation.AppendVideosViewedChapterIds(v)
	return _u
}

// ClearVideosViewedChapterIds clears the value of the "videos_viewed_chapter_ids" field.
func (_u *ProgressUpdateOne) ClearVideosViewedChapterIds() *ProgressUpdateOne {
	_u.mutation.ClearVideosViewedChapterIds()
	return _u
}

// SetPercentComplete sets the "percent_complete" field.
func (_u *ProgressUpdateOne) SetPercentComplete(v int) *ProgressUpdateOne {
	_u.mutation.ResetPercentComplete()
	_u.mutation.SetPercentComplete(v)
	return _u
}

// SetNillablePercentComplete sets the "percent_complete" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillablePercentComplete(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetPercentComplete(*v)
	}
	return _u
}

// AddPercentComplete adds value to the "percent_complete" field.
func (_u *ProgressUpdateOne) AddPercentComplete(v int) *ProgressUpdateOne {
	_u.mutation.AddPercentComplete(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressUpdateOne) SetStatus(v progress.Status) *ProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStatus(v *progress.Status) *ProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProgressUpdateOne) SetCompletedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProgressUpdateOne) ClearCompletedAt() *ProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.TotalChapters(); ok {
		if err := progress.TotalChaptersValidator(v); err != nil {
			return &ValidationError{Name: "total_chapters", err: fmt.Errorf(`ent: validator failed for field "Progress.total_chapters": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PercentComplete(); ok {
		if err := progress.PercentCompleteValidator(v); err != nil {
			return &ValidationError{Name: "percent_complete", err: fmt.Errorf(`ent: validator failed for field "Progress.percent_complete": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := progress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Progress.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(progress.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(progress.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(progress.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedChapterIds(); ok {
		_spec.SetField(progress.FieldCompletedChapterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedChapterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldCompletedChapterIds, value)
		})
	}
	if _u.mutation.CompletedChapterIdsCleared() {
		_spec.ClearField(progress.FieldCompletedChapterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotesViewedChapterIds(); ok {
		_spec.SetField(progress.FieldNotesViewedChapterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotesViewedChapterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldNotesViewedChapterIds, value)
		})
	}
	if _u.mutation.NotesViewedChapterIdsCleared() {
		_spec.ClearField(progress.FieldNotesViewedChapterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.VideosViewedChapterIds(); ok {
		_spec.SetField(progress.FieldVideosViewedChapterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideosViewedChapterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldVideosViewedChapterIds, value)
		})
	}
	if _u.mutation.VideosViewedChapterIdsCleared() {
		_spec.ClearField(progress.FieldVideosViewedChapterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PercentComplete(); ok {
		_spec.SetField(progress.FieldPercentComplete, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentComplete(); ok {
		_spec.AddField(progress.FieldPercentComplete, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progress.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(progress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(progress.FieldCompletedAt, field.TypeTime)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
