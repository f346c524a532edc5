package models

import "time"

// MoodTag categorizes a mood log entry
type MoodTag string

const (
	MoodTagEnergy  MoodTag = "energy"
	MoodTagStress  MoodTag = "stress"
	MoodTagSleep   MoodTag = "sleep"
	MoodTagWorkout MoodTag = "workout"
)

// ValidMoodTag reports whether t is one of the known tags
func ValidMoodTag(t MoodTag) bool {
	switch t {
	case MoodTagEnergy, MoodTagStress, MoodTagSleep, MoodTagWorkout:
		return true
	}
	return false
}

// MoodLog is a single mood check-in on a 1-10 scale. Immutable once
// created; there is no update or delete path for mood logs.
type MoodLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Tags      []MoodTag `json:"tags,omitempty"`
}
