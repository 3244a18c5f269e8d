package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/ent"
	"github.com/EAGLE1309/placecraft-sub002/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, studentID string, subjectID uuid.UUID) (*Progress, error) {
	row, err := r.client.Progress.Query().
		Where(progress.StudentID(studentID), progress.SubjectID(subjectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToProgress(row), nil
}

func (r *progressRepo) ListByStudent(ctx context.Context, studentID string) ([]*Progress, error) {
	rows, err := r.client.Progress.Query().
		Where(progress.StudentID(studentID)).
		Order(ent.Asc(progress.FieldStartedAt), ent.Asc(progress.FieldSubjectID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]*Progress, len(rows))
	for i, row := range rows {
		out[i] = entProgressToProgress(row)
	}
	return out, nil
}

func (r *progressRepo) Create(ctx context.Context, p *Progress) (*Progress, error) {
	create := r.client.Progress.Create().
		SetStudentID(p.StudentID).
		SetSubjectID(p.SubjectID).
		SetSubjectName(p.SubjectName).
		SetTotalChapters(p.TotalChapters).
		SetCompletedChapterIds(emptyIfNil(p.CompletedChapterIDs)).
		SetNotesViewedChapterIds(emptyIfNil(p.NotesViewedChapterIDs)).
		SetVideosViewedChapterIds(emptyIfNil(p.VideosViewedChapterIDs)).
		SetPercentComplete(p.PercentComplete).
		SetStatus(progress.Status(p.Status))
	if !p.StartedAt.IsZero() {
		create.SetStartedAt(p.StartedAt)
	}
	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := r.Get(ctx, p.StudentID, p.SubjectID)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return entProgressToProgress(row), nil
}

func (r *progressRepo) Mutate(ctx context.Context, studentID string, subjectID uuid.UUID, fn func(*Progress) error) (*Progress, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin progress update: %w", err)
	}

	row, err := tx.Progress.Query().
		Where(progress.StudentID(studentID), progress.SubjectID(subjectID)).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress for update: %w", err)
	}

	p := entProgressToProgress(row)
	if err := fn(p); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	upd := tx.Progress.UpdateOneID(row.ID).
		SetSubjectName(p.SubjectName).
		SetTotalChapters(p.TotalChapters).
		SetCompletedChapterIds(emptyIfNil(p.CompletedChapterIDs)).
		SetNotesViewedChapterIds(emptyIfNil(p.NotesViewedChapterIDs)).
		SetVideosViewedChapterIds(emptyIfNil(p.VideosViewedChapterIDs)).
		SetPercentComplete(p.PercentComplete).
		SetStatus(progress.Status(p.Status))
	if p.CompletedAt != nil {
		upd.SetCompletedAt(*p.CompletedAt)
	} else {
		upd.ClearCompletedAt()
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit progress update: %w", err)
	}
	return entProgressToProgress(updated), nil
}

func entProgressToProgress(row *ent.Progress) *Progress {
	return &Progress{
		StudentID:              row.StudentID,
		SubjectID:              row.SubjectID,
		SubjectName:            row.SubjectName,
		TotalChapters:          row.TotalChapters,
		CompletedChapterIDs:    emptyIfNil(row.CompletedChapterIds),
		NotesViewedChapterIDs:  emptyIfNil(row.NotesViewedChapterIds),
		VideosViewedChapterIDs: emptyIfNil(row.VideosViewedChapterIds),
		PercentComplete:        row.PercentComplete,
		Status:                 Status(row.Status),
		StartedAt:              row.StartedAt,
		CompletedAt:            row.CompletedAt,
	}
}

// emptyIfNil keeps JSON set columns as [] rather than null.
func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
