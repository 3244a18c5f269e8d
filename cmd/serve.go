package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/EAGLE1309/placecraft-sub002/internal/chapters"
	"github.com/EAGLE1309/placecraft-sub002/internal/httpapi"
	"github.com/EAGLE1309/placecraft-sub002/internal/llm"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/notes"
	"github.com/EAGLE1309/placecraft-sub002/internal/progress"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/subjects"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
	"github.com/EAGLE1309/placecraft-sub002/internal/videos"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PLACECRAFT_ADDR, default :8080)")
}

// runServer wires the store, LLM provider, searcher and services together
// and serves the API until interrupted.
func runServer(cmd *cobra.Command) error {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("PLACECRAFT_ENV"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	log.Info("store opened", "path", dbPath)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	log.Info("llm provider ready", "model", provider.ModelID())

	var searcher videos.Searcher
	if key := os.Getenv("PLACECRAFT_YOUTUBE_API_KEY"); key != "" {
		yt, err := videos.NewYouTubeSearcher(ctx, key)
		if err != nil {
			return fmt.Errorf("configure youtube searcher: %w", err)
		}
		searcher = yt
	} else {
		// Without a key every video request degrades to the fallback link.
		log.Warn("PLACECRAFT_YOUTUBE_API_KEY not set, videos run in degraded mode")
		searcher = unavailableSearcher{}
	}

	subjectSvc := subjects.NewService(st.Subjects(), provider, log, subjects.DefaultConfig())
	chapterSvc := chapters.NewService(st.Subjects(), st.Chapters(), provider, log, chapters.DefaultConfig())
	noteSvc := notes.NewService(st.Notes(), chapterSvc, provider, log, notes.DefaultConfig())
	videoSvc := videos.NewService(st.Videos(), st.Chapters(), st.Subjects(), searcher, log)
	progressSvc := progress.NewService(st.Progress(), log)

	router := httpapi.NewRouter(httpapi.Services{
		Subjects: subjectSvc,
		Chapters: chapterSvc,
		Notes:    noteSvc,
		Videos:   videoSvc,
		Progress: progressSvc,
	})

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = os.Getenv("PLACECRAFT_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// unavailableSearcher always fails, forcing the degraded fallback path.
type unavailableSearcher struct{}

func (unavailableSearcher) Search(context.Context, string, int) ([]types.Video, error) {
	return nil, errors.New("video search not configured")
}
