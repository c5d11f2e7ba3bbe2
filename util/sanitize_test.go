package util

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  jane@example.com  ", "jane@example.com"},
		{"removes control chars", "jane\x00doe", "janedoe"},
		{"removes tabs and newlines", "Jane\n\tDoe", "JaneDoe"},
		{"empty string", "", ""},
		{"unicode kept", "José Núñez", "José Núñez"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeString(tc.input); got != tc.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeEnvValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"secret"`, "secret"},
		{`'secret'`, "secret"},
		{"  secret  ", "secret"},
		{`  "secret"  `, "secret"},
		{`"unbalanced`, `"unbalanced`},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SanitizeEnvValue(tc.input); got != tc.want {
			t.Errorf("SanitizeEnvValue(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTrimLineEnding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pass\n", "pass"},
		{"pass\r\n", "pass"},
		{"pass\n\n", "pass\n"},
		{"pass\r", "pass\r"},
		{"pass\r\r\n", "pass\r"},
		{" pass ", " pass "},
		{"", ""},
	}
	for _, tc := range tests {
		if got := TrimLineEnding(tc.input); got != tc.want {
			t.Errorf("TrimLineEnding(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
