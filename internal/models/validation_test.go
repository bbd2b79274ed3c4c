package models

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "user@example.com", true},
		{"plus tag", "user+tag@example.com", true},
		{"dots and dashes", "first.last-name@sub.example.com", true},
		{"underscore local part", "user_name@example", true},
		{"missing at sign", "userexample.com", false},
		{"empty local part", "@example.com", false},
		{"empty domain", "user@", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes present", "Password123$", true},
		{"every allowed special", "Abcdefgh123$%^*-_", true},
		{"exactly twelve chars", "Aa1$aaaaaaaa", true},
		{"too short", "Aa1$aaaaaaa", false},
		{"no uppercase", "password123$", false},
		{"no lowercase", "PASSWORD123$", false},
		{"no digit", "Passwordabc$", false},
		{"no special", "Password1234", false},
		{"disallowed special", "Password123!", false},
		{"space not allowed", "Password 123$", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.password); got != tt.want {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
