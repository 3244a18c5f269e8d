package chapters

import (
	"fmt"
	"strings"

	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

const chapterListSystemPrompt = `You are a curriculum designer turning a learning roadmap into a chapter list for a self-paced course. Chapters must follow the roadmap order exactly, one chapter per roadmap topic.`

func buildChapterListUserMessage(subject *store.Subject) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", subject.DisplayName)
	if subject.LearningType != "" {
		fmt.Fprintf(&b, "Preferred learning style: %s\n", subject.LearningType)
	}

	b.WriteString("\nRoadmap:\n")
	writeRoadmap(&b, subject.Roadmap)

	b.WriteString(`
Instructions:
Produce exactly one chapter per roadmap topic, in the same order:
1. The chapter title may rephrase the topic title but must keep its meaning.
2. The summary is a single sentence saying what the learner can do after the chapter.`)

	return b.String()
}

const chapterContentSystemPrompt = `You are writing course content for a self-paced learning platform. Given a chapter and the roadmap it belongs to, you produce a thorough overview and the chapter's key concepts.`

func buildChapterContentUserMessage(chapter *store.Chapter, subject *store.Subject) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", subject.DisplayName)
	fmt.Fprintf(&b, "Chapter: %s\n", chapter.Title)
	if chapter.Summary != "" {
		fmt.Fprintf(&b, "Synopsis: %s\n", chapter.Summary)
	}

	b.WriteString("\nFull roadmap for context:\n")
	writeRoadmap(&b, subject.Roadmap)

	b.WriteString(`
Instructions:
1. Write an overview of 3-6 paragraphs that teaches the chapter, assuming the learner finished the earlier roadmap topics and nothing else.
2. List the chapter's key concepts in the order a learner should meet them, each with a plain-language explanation of 2-4 sentences.
3. Stay inside this chapter's scope; later roadmap topics may be mentioned but not taught.`)

	return b.String()
}

func writeRoadmap(b *strings.Builder, roadmap []types.RoadmapTopic) {
	for i, topic := range roadmap {
		fmt.Fprintf(b, "%d. %s", i+1, topic.Title)
		if topic.Description != "" {
			fmt.Fprintf(b, ": %s", topic.Description)
		}
		b.WriteString("\n")
	}
}
