package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "Software Engineer",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "John",
			limit:  10,
			expect: "John",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "John Smith",
			limit:  4,
			expect: "John...",
		},
		{
			name:   "counts runes",
			input:  "  Zoë Müller  ",
			limit:  3,
			expect: "Zoë...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
