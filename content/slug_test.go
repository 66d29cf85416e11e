package content

import "testing"

func TestCanonicalSlug(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  spaced  ", "spaced"},
		{"already-fine", "already-fine"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := CanonicalSlug(tc.input); got != tc.want {
			t.Fatalf("CanonicalSlug(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	if !IsValidSlug("my-first-post") {
		t.Fatalf("expected my-first-post to be valid")
	}
	if IsValidSlug("Not A Slug") {
		t.Fatalf("expected spaced string to be invalid")
	}
}
