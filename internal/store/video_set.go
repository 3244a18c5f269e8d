package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/ent"
	"github.com/EAGLE1309/placecraft-sub002/ent/videoset"
)

// videoRepo implements VideoRepo using the ent client.
type videoRepo struct {
	client *ent.Client
}

func (r *videoRepo) GetByChapter(ctx context.Context, chapterID uuid.UUID) (*VideoSet, error) {
	v, err := r.client.VideoSet.Query().
		Where(videoset.ChapterID(chapterID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query video set: %w", err)
	}
	return entVideoSetToVideoSet(v), nil
}

func (r *videoRepo) Create(ctx context.Context, in *VideoSet) (*VideoSet, error) {
	create := r.client.VideoSet.Create().
		SetChapterID(in.ChapterID).
		SetVideos(in.Videos).
		SetFallbackURL(in.FallbackURL)
	if !in.FetchedAt.IsZero() {
		create.SetFetchedAt(in.FetchedAt)
	}
	v, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := r.GetByChapter(ctx, in.ChapterID)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("create video set: %w", err)
	}
	return entVideoSetToVideoSet(v), nil
}

func entVideoSetToVideoSet(v *ent.VideoSet) *VideoSet {
	return &VideoSet{
		ChapterID:   v.ChapterID,
		Videos:      v.Videos,
		FallbackURL: v.FallbackURL,
		FetchedAt:   v.FetchedAt,
	}
}
