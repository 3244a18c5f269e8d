// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "order", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Default: ""},
		{Name: "overview", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "content_generated_at", Type: field.TypeTime, Nullable: true},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chapter_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ChaptersColumns[1]},
			},
			{
				Name:    "chapter_subject_id_order",
				Unique:  true,
				Columns: []*schema.Column{ChaptersColumns[1], ChaptersColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chapter_id", Type: field.TypeUUID, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "subject_name", Type: field.TypeString, Default: ""},
		{Name: "total_chapters", Type: field.TypeInt, Default: 0},
		{Name: "completed_chapter_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "notes_viewed_chapter_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "videos_viewed_chapter_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "percent_complete", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not-started", "in-progress", "completed"}, Default: "not-started"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_student_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[1]},
			},
			{
				Name:    "progress_student_id_subject_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[1], ProgressesColumns[2]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "skill_key", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "learning_type", Type: field.TypeString, Default: ""},
		{Name: "roadmap", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_skill_key",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
		},
	}
	// VideoSetsColumns holds the columns for the "video_sets" table.
	VideoSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chapter_id", Type: field.TypeUUID, Unique: true},
		{Name: "videos", Type: field.TypeJSON},
		{Name: "fallback_url", Type: field.TypeString},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// VideoSetsTable holds the schema information for the "video_sets" table.
	VideoSetsTable = &schema.Table{
		Name:       "video_sets",
		Columns:    VideoSetsColumns,
		PrimaryKey: []*schema.Column{VideoSetsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChaptersTable,
		LlmRequestEventsTable,
		NotesTable,
		ProgressesTable,
		SubjectsTable,
		VideoSetsTable,
	}
)

func init() {
}
