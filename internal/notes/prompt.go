package notes

import (
	"fmt"
	"strings"

	"github.com/EAGLE1309/placecraft-sub002/internal/store"
)

const notesSystemPrompt = `You are writing study notes for a self-paced learning platform. Given a chapter's overview and key concepts, produce concise Markdown notes a learner can revise from without rereading the chapter.`

func buildNotesUserMessage(chapter *store.Chapter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Chapter: %s\n", chapter.Title)

	b.WriteString("\nOverview:\n")
	b.WriteString(chapter.Overview)
	b.WriteString("\n\nKey concepts:\n")
	for i, c := range chapter.Concepts {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c.Title, c.Explanation)
	}

	b.WriteString(`
Instructions:
1. Open with a 2-3 bullet recap of what the chapter covers.
2. Give each key concept its own section with the essentials a learner must remember.
3. Close with a short self-check list of questions, no answers.
4. Use Markdown headings, bullets and inline code where it helps.`)

	return b.String()
}
