// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/EAGLE1309/placecraft-sub002/ent/chapter"
	"github.com/EAGLE1309/placecraft-sub002/ent/llmrequestevent"
	"github.com/EAGLE1309/placecraft-sub002/ent/note"
	"github.com/EAGLE1309/placecraft-sub002/ent/progress"
	"github.com/EAGLE1309/placecraft-sub002/ent/schema"
	"github.com/EAGLE1309/placecraft-sub002/ent/subject"
	"github.com/EAGLE1309/placecraft-sub002/ent/videoset"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescTitle is the schema descriptor for title field.
	chapterDescTitle := chapterFields[3].Descriptor()
	// chapter.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	chapter.TitleValidator = chapterDescTitle.Validators[0].(func(string) error)
	// chapterDescSummary is the schema descriptor for summary field.
	chapterDescSummary := chapterFields[4].Descriptor()
	// chapter.DefaultSummary holds the default value on creation for the summary field.
	chapter.DefaultSummary = chapterDescSummary.Default.(string)
	// chapterDescID is the schema descriptor for id field.
	chapterDescID := chapterFields[0].Descriptor()
	// chapter.DefaultID holds the default value on creation for the id field.
	chapter.DefaultID = chapterDescID.Default.(func() uuid.UUID)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescContent is the schema descriptor for content field.
	noteDescContent := noteFields[1].Descriptor()
	// note.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	note.ContentValidator = noteDescContent.Validators[0].(func(string) error)
	// noteDescGeneratedAt is the schema descriptor for generated_at field.
	noteDescGeneratedAt := noteFields[2].Descriptor()
	// note.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	note.DefaultGeneratedAt = noteDescGeneratedAt.Default.(func() time.Time)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescStudentID is the schema descriptor for student_id field.
	progressDescStudentID := progressFields[0].Descriptor()
	// progress.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	progress.StudentIDValidator = progressDescStudentID.Validators[0].(func(string) error)
	// progressDescSubjectName is the schema descriptor for subject_name field.
	progressDescSubjectName := progressFields[2].Descriptor()
	// progress.DefaultSubjectName holds the default value on creation for the subject_name field.
	progress.DefaultSubjectName = progressDescSubjectName.Default.(string)
	// progressDescTotalChapters is the schema descriptor for total_chapters field.
	progressDescTotalChapters := progressFields[3].Descriptor()
	// progress.DefaultTotalChapters holds the default value on creation for the total_chapters field.
	progress.DefaultTotalChapters = progressDescTotalChapters.Default.(int)
	// progress.TotalChaptersValidator is a validator for the "total_chapters" field. It is called by the builders before save.
	progress.TotalChaptersValidator = progressDescTotalChapters.Validators[0].(func(int) error)
	// progressDescPercentComplete is the schema descriptor for percent_complete field.
	progressDescPercentComplete := progressFields[7].Descriptor()
	// progress.DefaultPercentComplete holds the default value on creation for the percent_complete field.
	progress.DefaultPercentComplete = progressDescPercentComplete.Default.(int)
	// progress.PercentCompleteValidator is a validator for the "percent_complete" field. It is called by the builders before save.
	progress.PercentCompleteValidator = progressDescPercentComplete.Validators[0].(func(int) error)
	// progressDescStartedAt is the schema descriptor for started_at field.
	progressDescStartedAt := progressFields[9].Descriptor()
	// progress.DefaultStartedAt holds the default value on creation for the started_at field.
	progress.DefaultStartedAt = progressDescStartedAt.Default.(func() time.Time)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescSkillKey is the schema descriptor for skill_key field.
	subjectDescSkillKey := subjectFields[1].Descriptor()
	// subject.SkillKeyValidator is a validator for the "skill_key" field. It is called by the builders before save.
	subject.SkillKeyValidator = subjectDescSkillKey.Validators[0].(func(string) error)
	// subjectDescDisplayName is the schema descriptor for display_name field.
	subjectDescDisplayName := subjectFields[2].Descriptor()
	// subject.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	subject.DisplayNameValidator = subjectDescDisplayName.Validators[0].(func(string) error)
	// subjectDescLearningType is the schema descriptor for learning_type field.
	subjectDescLearningType := subjectFields[3].Descriptor()
	// subject.DefaultLearningType holds the default value on creation for the learning_type field.
	subject.DefaultLearningType = subjectDescLearningType.Default.(string)
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectFields[5].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescID is the schema descriptor for id field.
	subjectDescID := subjectFields[0].Descriptor()
	// subject.DefaultID holds the default value on creation for the id field.
	subject.DefaultID = subjectDescID.Default.(func() uuid.UUID)
	videosetFields := schema.VideoSet{}.Fields()
	_ = videosetFields
	// videosetDescFallbackURL is the schema descriptor for fallback_url field.
	videosetDescFallbackURL := videosetFields[2].Descriptor()
	// videoset.FallbackURLValidator is a validator for the "fallback_url" field. It is called by the builders before save.
	videoset.FallbackURLValidator = videosetDescFallbackURL.Validators[0].(func(string) error)
	// videosetDescFetchedAt is the schema descriptor for fetched_at field.
	videosetDescFetchedAt := videosetFields[3].Descriptor()
	// videoset.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	videoset.DefaultFetchedAt = videosetDescFetchedAt.Default.(func() time.Time)
}
