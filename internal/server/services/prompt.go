package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

const (
	insightExcerpt        = 200
	recommendationExcerpt = 300
	currentExcerpt        = 500
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func insightPrompt(current *models.Entry, related []models.Entry) string {
	var b strings.Builder
	b.WriteString("You are a thoughtful journaling companion. Read the user's new diary entry ")
	b.WriteString("and offer a short, warm reflection.\n\n")

	if len(related) > 0 {
		b.WriteString("Earlier entries by the same user:\n\n")
		for _, e := range related {
			fmt.Fprintf(&b, "Date: %s\nTitle: %s\nContent: %s...\n\n",
				e.CreatedAt.Format("2006-01-02"), e.Title, truncate(e.Content, insightExcerpt))
		}
	}

	fmt.Fprintf(&b, "Current entry:\nTitle: %s\nContent: %s\n\n", current.Title, truncate(current.Content, currentExcerpt))
	b.WriteString("Point out patterns or changes compared with earlier entries where you see them. ")
	b.WriteString("Keep it encouraging and under 120 words.")
	return b.String()
}

func recommendationPrompt(title, content string, related []models.Entry) string {
	var b strings.Builder
	b.WriteString("You are a smart diary assistant. Using the user's related past entries and the entry ")
	b.WriteString("they are writing now, give helpful suggestions.\n\n")

	if len(related) > 0 {
		b.WriteString("Related past entries, most similar first:\n\n")
		for i, e := range related {
			fmt.Fprintf(&b, "[Related entry %d]\nTitle: %s\nContent: %s...\n\n", i+1, e.Title, truncate(e.Content, recommendationExcerpt))
		}
	} else {
		b.WriteString("The user has no earlier entries; this is the first one.\n\n")
	}

	fmt.Fprintf(&b, "Entry in progress:\nTitle: %s\nContent: %s\n\n", title, truncate(content, currentExcerpt))
	b.WriteString("Please provide:\n")
	b.WriteString("1. A brief comment on the current content\n")
	b.WriteString("2. Connections or themes shared with past entries\n")
	b.WriteString("3. One or two writing suggestions or directions to reflect on\n\n")
	b.WriteString("Keep a warm, encouraging tone and stay under 150 words.")
	return b.String()
}
