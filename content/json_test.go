package content

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeBlocks_TagsEveryObject(t *testing.T) {
	blocks := Blocks{
		Hero{Content: "Title"},
		Code{Content: "x := 1", Language: "go", HighlightLines: []int{1}},
	}

	data, err := EncodeBlocks(blocks)
	if err != nil {
		t.Fatalf("EncodeBlocks: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"type":"hero"`) {
		t.Fatalf("expected hero discriminator, got %s", got)
	}
	if !strings.Contains(got, `"type":"code"`) {
		t.Fatalf("expected code discriminator, got %s", got)
	}
	if !strings.Contains(got, `"highlightLines":[1]`) {
		t.Fatalf("expected highlight lines encoded, got %s", got)
	}
}

func TestDecodeBlocks_RoundTrip(t *testing.T) {
	original := Blocks{
		Hero{Content: "Title"},
		Callout{Variant: CalloutWarning, Content: "Careful", Title: "Hey"},
		List{Items: []string{"a", "b"}, Ordered: true},
		Table{Headers: []string{"K", "V"}, Rows: [][]string{{"a", "1"}}},
		Timeline{Items: []TimelineItem{{Time: "t", Title: "T", Description: "d"}}},
		Metrics{Items: []MetricItem{{Label: "L", Value: "1", Trend: TrendUp}}},
	}

	data, err := EncodeBlocks(original)
	if err != nil {
		t.Fatalf("EncodeBlocks: %v", err)
	}

	decoded, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip mismatch:\noriginal: %#v\ndecoded:  %#v", original, decoded)
	}
}

func TestDecodeBlocks_NestedContainers(t *testing.T) {
	original := Blocks{
		TwoColumn{
			Left:  Blocks{Text{Content: "left"}},
			Right: Blocks{Code{Content: "x", Language: "go"}},
		},
		Tabs{Tabs: []Tab{{Label: "One", Content: Blocks{Text{Content: "inner"}}}}},
	}

	data, err := EncodeBlocks(original)
	if err != nil {
		t.Fatalf("EncodeBlocks: %v", err)
	}

	decoded, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("nested round trip mismatch:\noriginal: %#v\ndecoded:  %#v", original, decoded)
	}
}

func TestDecodeBlocks_UnknownTypeRejected(t *testing.T) {
	_, err := DecodeBlocks([]byte(`[{"type":"hologram","content":"x"}]`))
	if err == nil {
		t.Fatalf("expected unknown type error")
	}
	if !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}

	var unknown *UnknownBlockTypeError
	if !errors.As(err, &unknown) || unknown.Type != "hologram" {
		t.Fatalf("expected typed error naming hologram, got %v", err)
	}
}

func TestDecodeBlocks_MalformedPayload(t *testing.T) {
	_, err := DecodeBlocks([]byte(`{"not":"an array"}`))
	if err == nil {
		t.Fatalf("expected error for non-array payload")
	}
	if !errors.Is(err, ErrInvalidBlockJSON) {
		t.Fatalf("expected ErrInvalidBlockJSON, got %v", err)
	}
}

func TestEncodeBlocks_NilEncodesEmptyArray(t *testing.T) {
	data, err := EncodeBlocks(nil)
	if err != nil {
		t.Fatalf("EncodeBlocks: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}

func TestPostJSON_RoundTrip(t *testing.T) {
	post, err := NewPostBuilder().
		ID(3).
		Title("Round trip").
		Date("2025-02-02").
		Tags([]string{"go"}).
		Content(Blocks{Heading{Content: "H"}, Text{Content: "T"}}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, err := EncodeBlocks(post.Content)
	if err != nil {
		t.Fatalf("EncodeBlocks: %v", err)
	}
	decoded, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks: %v", err)
	}
	if !reflect.DeepEqual(decoded, post.Content) {
		t.Fatalf("post content round trip mismatch")
	}
}
