package subjects

import (
	"fmt"
	"strings"
)

const roadmapSystemPrompt = `You are a curriculum designer for a self-paced learning platform. Given a skill, you produce a practical, ordered learning roadmap that takes a motivated beginner to job-ready competence.`

func buildRoadmapUserMessage(skillName, learningType string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", skillName)
	if learningType != "" {
		fmt.Fprintf(&b, "Preferred learning style: %s\n", learningType)
	}

	b.WriteString(`
Instructions:
Create a learning roadmap with 6-12 ordered topics:
1. Start from the fundamentals and build up; each topic should depend only on earlier ones.
2. Keep topic titles short and concrete. No numbering in the titles.
3. Each description says what the learner covers and why it matters, in 1-2 sentences.
4. Cover the skill end to end, including the practices a professional would be expected to know.`)

	return b.String()
}
