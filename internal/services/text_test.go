package services

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Data Structures & Algorithms  ", "data-structures-algorithms"},
		{"C++ Basics!", "c-basics"},
		{"UPPER lower 123", "upper-lower-123"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyEmptyFallsBackToUUID(t *testing.T) {
	got := Slugify("!!!")
	if got == "" {
		t.Fatal("expected non-empty slug")
	}
	if len(got) != 36 {
		t.Fatalf("expected uuid fallback, got %q", got)
	}
}

func TestNormalizeRequired(t *testing.T) {
	if _, err := NormalizeRequired("   ", "required"); err == nil {
		t.Fatal("expected error for blank value")
	}
	value, err := NormalizeRequired("  x  ", "required")
	if err != nil || value != "x" {
		t.Fatalf("expected trimmed value, got %q, %v", value, err)
	}
}

func TestCleanSearchTerm(t *testing.T) {
	if got := CleanSearchTerm("  foo   bar\tbaz "); got != "foo bar baz" {
		t.Fatalf("unexpected clean term: %q", got)
	}
}
