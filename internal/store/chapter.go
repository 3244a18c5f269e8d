package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/ent"
	"github.com/EAGLE1309/placecraft-sub002/ent/chapter"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// chapterRepo implements ChapterRepo using the ent client.
type chapterRepo struct {
	client *ent.Client
}

func (r *chapterRepo) CreateBatch(ctx context.Context, chapters []*Chapter) ([]*Chapter, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin chapter batch: %w", err)
	}

	builders := make([]*ent.ChapterCreate, len(chapters))
	for i, c := range chapters {
		builders[i] = tx.Chapter.Create().
			SetSubjectID(c.SubjectID).
			SetOrder(c.Order).
			SetTitle(c.Title).
			SetSummary(c.Summary)
	}

	created, err := tx.Chapter.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, fmt.Errorf("rollback chapter batch: %v (after %w)", rbErr, err)
		}
		return nil, fmt.Errorf("create chapter batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit chapter batch: %w", err)
	}

	out := make([]*Chapter, len(created))
	for i, c := range created {
		out[i] = entChapterToChapter(c)
	}
	return out, nil
}

func (r *chapterRepo) GetByID(ctx context.Context, id uuid.UUID) (*Chapter, error) {
	c, err := r.client.Chapter.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chapter: %w", err)
	}
	return entChapterToChapter(c), nil
}

func (r *chapterRepo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*Chapter, error) {
	rows, err := r.client.Chapter.Query().
		Where(chapter.SubjectID(subjectID)).
		Order(ent.Asc(chapter.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	out := make([]*Chapter, len(rows))
	for i, c := range rows {
		out[i] = entChapterToChapter(c)
	}
	return out, nil
}

func (r *chapterRepo) AttachContent(ctx context.Context, id uuid.UUID, overview string, concepts []types.Concept, at time.Time) (*Chapter, error) {
	updated, err := r.client.Chapter.UpdateOneID(id).
		SetOverview(overview).
		SetConcepts(concepts).
		SetContentGeneratedAt(at).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("attach chapter content: %w", err)
	}
	return entChapterToChapter(updated), nil
}

func entChapterToChapter(c *ent.Chapter) *Chapter {
	return &Chapter{
		ID:                 c.ID,
		SubjectID:          c.SubjectID,
		Order:              c.Order,
		Title:              c.Title,
		Summary:            c.Summary,
		Overview:           c.Overview,
		Concepts:           c.Concepts,
		ContentGeneratedAt: c.ContentGeneratedAt,
	}
}
