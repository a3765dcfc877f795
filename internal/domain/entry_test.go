package domain

import (
	"reflect"
	"testing"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"sarah@agency.com", true},
		{"first.last@sub.example.org", true},
		{"user-name@my-host.io", true},
		{"a@b.co", true},
		{"", false},
		{"no-at-sign.com", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"user @example.com", false},
	}

	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty", []string{}, []string{}},
		{"no duplicates", []string{"Marketing", "B2B"}, []string{"Marketing", "B2B"}},
		{"duplicates removed, first occurrence wins", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"case sensitive", []string{"Marketing", "marketing"}, []string{"Marketing", "marketing"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTags(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTags_NeverNil(t *testing.T) {
	if NormalizeTags(nil) == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestEntryUpdateParams_IsEmpty(t *testing.T) {
	if !(EntryUpdateParams{}).IsEmpty() {
		t.Error("zero params should be empty")
	}

	name := "GitHub"
	if (EntryUpdateParams{WebsiteName: &name}).IsEmpty() {
		t.Error("params with a set field should not be empty")
	}
	if (EntryUpdateParams{Tags: []string{}}).IsEmpty() {
		t.Error("params with non-nil tags should not be empty")
	}
}
