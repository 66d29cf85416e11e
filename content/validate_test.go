package content

import (
	"strings"
	"testing"
)

func TestValidateContent_CleanSequence(t *testing.T) {
	blocks := NewBuilder().
		Heading("Section").
		Code("x := 1", "go").
		Image("/img/a.png", "A diagram").
		Build()

	result := ValidateContent(blocks)
	if !result.IsValid {
		t.Fatalf("expected valid result, got errors: %#v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %#v", result.Errors)
	}
}

func TestValidateContent_AccumulatesAllFailures(t *testing.T) {
	blocks := Blocks{
		Image{Src: "/img/a.png"},
		Table{Headers: []string{"A"}},
	}

	result := ValidateContent(blocks)
	if result.IsValid {
		t.Fatalf("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected exactly 2 errors, got %#v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "image at index 0") {
		t.Fatalf("unexpected first error: %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "table at index 1") {
		t.Fatalf("unexpected second error: %q", result.Errors[1])
	}
}

func TestValidateContent_EmptyCode(t *testing.T) {
	result := ValidateContent(Blocks{Code{Content: "   ", Language: "go"}})

	if result.IsValid || len(result.Errors) != 1 {
		t.Fatalf("expected single empty-code error, got %#v", result)
	}
	if !strings.Contains(result.Errors[0], "empty content") {
		t.Fatalf("unexpected message: %q", result.Errors[0])
	}
}

func TestValidateContent_EmptyTimeline(t *testing.T) {
	result := ValidateContent(Blocks{Timeline{}})

	if result.IsValid || len(result.Errors) != 1 {
		t.Fatalf("expected single timeline error, got %#v", result)
	}
}

func TestValidateContent_EmptySequenceIsValid(t *testing.T) {
	result := ValidateContent(Blocks{})
	if !result.IsValid {
		t.Fatalf("expected empty sequence to validate, got %#v", result)
	}
}
