package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/ent"
	"github.com/EAGLE1309/placecraft-sub002/ent/note"
)

// noteRepo implements NoteRepo using the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) GetByChapter(ctx context.Context, chapterID uuid.UUID) (*Note, error) {
	n, err := r.client.Note.Query().
		Where(note.ChapterID(chapterID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query notes: %w", err)
	}
	return entNoteToNote(n), nil
}

func (r *noteRepo) Create(ctx context.Context, in *Note) (*Note, error) {
	create := r.client.Note.Create().
		SetChapterID(in.ChapterID).
		SetContent(in.Content)
	if !in.GeneratedAt.IsZero() {
		create.SetGeneratedAt(in.GeneratedAt)
	}
	n, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := r.GetByChapter(ctx, in.ChapterID)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("create notes: %w", err)
	}
	return entNoteToNote(n), nil
}

func entNoteToNote(n *ent.Note) *Note {
	return &Note{
		ChapterID:   n.ChapterID,
		Content:     n.Content,
		GeneratedAt: n.GeneratedAt,
	}
}
