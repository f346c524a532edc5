package models

import "time"

// JournalPrompt identifies which writing prompt an entry answers
type JournalPrompt string

const (
	PromptMorning  JournalPrompt = "morning"
	PromptPriority JournalPrompt = "priority"
	PromptFree     JournalPrompt = "free"
)

// ValidJournalPrompt reports whether p is one of the known prompts
func ValidJournalPrompt(p JournalPrompt) bool {
	switch p {
	case PromptMorning, PromptPriority, PromptFree:
		return true
	}
	return false
}

// JournalEntry is a free-text journal entry. Text and prompt are
// updatable; entries are deletable.
type JournalEntry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Text      string        `json:"text"`
	Prompt    JournalPrompt `json:"prompt,omitempty"`
}
