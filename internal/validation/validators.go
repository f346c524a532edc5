package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for domain formats and enums
	// These should never fail in normal operation, but panic loudly if they do
	if err := Validate.RegisterValidation("day_key", validateDayKey); err != nil {
		panic(fmt.Sprintf("failed to register day_key validator: %v", err))
	}
	if err := Validate.RegisterValidation("clock_time", validateClockTime); err != nil {
		panic(fmt.Sprintf("failed to register clock_time validator: %v", err))
	}
	if err := Validate.RegisterValidation("journal_prompt", validateJournalPrompt); err != nil {
		panic(fmt.Sprintf("failed to register journal_prompt validator: %v", err))
	}
	if err := Validate.RegisterValidation("schedule_mode", validateScheduleMode); err != nil {
		panic(fmt.Sprintf("failed to register schedule_mode validator: %v", err))
	}
}

// validateDayKey validates that a string is a YYYY-MM-DD day key
func validateDayKey(fl validator.FieldLevel) bool {
	_, err := clock.ParseDayKey(fl.Field().String())
	return err == nil
}

// validateClockTime validates that a string is an HH:MM clock time
func validateClockTime(fl validator.FieldLevel) bool {
	_, err := clock.ClockToMinutes(fl.Field().String())
	return err == nil
}

// validateJournalPrompt validates that a string is a valid JournalPrompt enum value
func validateJournalPrompt(fl validator.FieldLevel) bool {
	return models.ValidJournalPrompt(models.JournalPrompt(fl.Field().String()))
}

// validateScheduleMode validates that a string is a valid ScheduleMode enum value
func validateScheduleMode(fl validator.FieldLevel) bool {
	return models.ValidScheduleMode(models.ScheduleMode(fl.Field().String()))
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}
