package posts

import (
	"strings"
	"testing"
)

func TestMetadataValidate(t *testing.T) {
	valid := Metadata{
		ID:    1,
		Title: "T",
		Date:  "2025-06-01",
		Tags:  []string{"go"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid metadata, got %v", err)
	}
}

func TestMetadataValidate_CollectsAllFailures(t *testing.T) {
	err := Metadata{Reactions: -1}.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	msg := err.Error()
	for _, field := range []string{"id", "title", "date", "tags", "reactions"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("expected %q named in %q", field, msg)
		}
	}
}

func TestMetadataValidate_DateFormat(t *testing.T) {
	bad := Metadata{
		ID:    1,
		Title: "T",
		Date:  "June 1st 2025",
		Tags:  []string{"go"},
	}
	err := bad.Validate()
	if err == nil || !strings.Contains(err.Error(), "date") {
		t.Fatalf("expected date format error, got %v", err)
	}
}
