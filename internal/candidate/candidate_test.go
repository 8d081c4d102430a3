package candidate

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "00:00"},
		{"under a minute", 42, "00:42"},
		{"under an hour", 6300 % 3600, "45:00"},
		{"over an hour", 6300, "01:45:00"},
		{"exact hour", 3600, "01:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{Duration: tt.seconds}
			if got := c.FormatDuration(); got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestViewCountUnknown(t *testing.T) {
	c := Candidate{}
	if got := c.ViewCount(); got != 0 {
		t.Errorf("ViewCount(nil) = %d, want 0", got)
	}

	views := int64(150000)
	c.Views = &views
	if got := c.ViewCount(); got != 150000 {
		t.Errorf("ViewCount = %d, want 150000", got)
	}
}

func TestJoinedTags(t *testing.T) {
	c := Candidate{Tags: []string{"Film Noir", "1940s"}}
	if got := c.JoinedTags(); got != "film noir 1940s" {
		t.Errorf("JoinedTags = %q", got)
	}
}
