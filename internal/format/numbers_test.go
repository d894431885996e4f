package format

import "testing"

// TestFormatNumberString verifies thousand separator formatting.
func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}

	for _, tt := range tests {
		if got := FormatNumberString(tt.input); got != tt.expected {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatUint(t *testing.T) {
	t.Parallel()
	if got := FormatUint(3203324994356); got != "3,203,324,994,356" {
		t.Errorf("FormatUint = %q", got)
	}
}

func TestFormatUintList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   []uint64
		want string
	}{
		{nil, "[]"},
		{[]uint64{2}, "[2]"},
		{[]uint64{2, 3, 5, 7}, "[2, 3, 5, 7]"},
	}
	for _, tt := range tests {
		if got := FormatUintList(tt.in); got != tt.want {
			t.Errorf("FormatUintList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
