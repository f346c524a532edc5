package validation

import "testing"

func TestCustomValidators(t *testing.T) {
	t.Parallel()

	type doc struct {
		Day    string `validate:"omitempty,day_key"`
		Start  string `validate:"omitempty,clock_time"`
		Prompt string `validate:"omitempty,journal_prompt"`
		Mode   string `validate:"omitempty,schedule_mode"`
	}

	tests := []struct {
		name    string
		doc     doc
		wantErr bool
	}{
		{name: "all empty", doc: doc{}, wantErr: false},
		{name: "valid values", doc: doc{Day: "2024-03-05", Start: "09:30", Prompt: "morning", Mode: "weekdays"}, wantErr: false},
		{name: "bad day key", doc: doc{Day: "03/05/2024"}, wantErr: true},
		{name: "bad clock time", doc: doc{Start: "25:00"}, wantErr: true},
		{name: "bad prompt", doc: doc{Prompt: "evening"}, wantErr: true},
		{name: "bad mode", doc: doc{Mode: "sometimes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate.Struct(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate.Struct(%+v) error = %v, wantErr %v", tt.doc, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims whitespace", in: "  plan the day  ", want: "plan the day"},
		{name: "strips control characters", in: "plan\x00 the\x07 day", want: "plan the day"},
		{name: "keeps newlines and tabs", in: "line one\n\tline two", want: "line one\n\tline two"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeText(tt.in); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
