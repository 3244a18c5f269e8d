package videos

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// YouTubeSearcher finds videos through the YouTube Data API.
type YouTubeSearcher struct {
	svc *youtube.Service
}

// NewYouTubeSearcher creates a searcher backed by the YouTube Data API.
func NewYouTubeSearcher(ctx context.Context, apiKey string) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube client: %w", err)
	}
	return &YouTubeSearcher{svc: svc}, nil
}

// Search returns up to limit videos for the query, in the API's own ranking.
func (y *YouTubeSearcher) Search(ctx context.Context, query string, limit int) ([]types.Video, error) {
	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &apperr.SearchServiceError{Err: err}
	}

	videos := make([]types.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		v := types.Video{
			Title:       item.Snippet.Title,
			URL:         "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			ChannelName: item.Snippet.ChannelTitle,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			v.ThumbnailURL = item.Snippet.Thumbnails.Medium.Url
		}
		videos = append(videos, v)
	}
	return videos, nil
}
