package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	Subjects SubjectService
	Chapters ChapterService
	Notes    NoteService
	Videos   VideoService
	Progress ProgressService
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	subjects := NewSubjectHandler(svcs.Subjects)
	chapters := NewChapterHandler(svcs.Chapters)
	notes := NewNoteHandler(svcs.Notes)
	videos := NewVideoHandler(svcs.Videos)
	progress := NewProgressHandler(svcs.Progress)

	api := router.Group("/api")
	{
		api.GET("/subjects", subjects.Get)
		api.GET("/subjects/check", subjects.Check)
		api.POST("/subjects", subjects.Generate)

		api.GET("/chapters", chapters.List)
		api.POST("/chapters", chapters.Generate)
		api.GET("/chapters/:chapterId/content", chapters.Content)
		api.POST("/chapters/:chapterId/notes", notes.GetOrGenerate)
		api.GET("/chapters/:chapterId/videos", videos.GetOrFetch)

		api.GET("/progress", progress.Get)
		api.POST("/progress", progress.Mutate)
	}

	return router
}
