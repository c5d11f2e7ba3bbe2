package util

import "testing"

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"email", "jane.doe@example.com", "j******e@example.com"},
		{"short local part", "jd@example.com", "**@example.com"},
		{"plain value", "abcdefgh", "a******h"},
		{"short value", "abcd", "****"},
		{"unicode", "密码测试密码", "密****码"},
		{"missing domain", "jane@", "j***@"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mask(tc.input); got != tc.want {
				t.Errorf("Mask(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "flag", "config"); got != "flag" {
		t.Errorf("expected flag, got %q", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := Coalesce(0, 3); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}
