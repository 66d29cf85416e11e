package content

import (
	"encoding/json"
	"fmt"
)

// Blocks serialize as a JSON array of objects, each carrying a "type"
// discriminator next to the variant's own fields. Decoding rejects unknown
// discriminators instead of guessing a variant.

type typeProbe struct {
	Type BlockType `json:"type"`
}

// UnmarshalJSON decodes an array of discriminated block objects.
func (b *Blocks) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlockJSON, err)
	}

	out := make(Blocks, 0, len(raw))
	for i, item := range raw {
		block, err := decodeBlock(item)
		if err != nil {
			return fmt.Errorf("content: block %d: %w", i, err)
		}
		out = append(out, block)
	}
	*b = out
	return nil
}

// DecodeBlocks parses a JSON array into a block sequence.
func DecodeBlocks(data []byte) (Blocks, error) {
	var blocks Blocks
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// EncodeBlocks renders a block sequence as a JSON array.
func EncodeBlocks(blocks Blocks) ([]byte, error) {
	if blocks == nil {
		blocks = Blocks{}
	}
	return json.Marshal(blocks)
}

func decodeBlock(data []byte) (Block, error) {
	var probe typeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlockJSON, err)
	}

	target, err := newBlock(probe.Type)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlockJSON, err)
	}
	return deref(target), nil
}

func newBlock(t BlockType) (Block, error) {
	switch t {
	case TypeHero:
		return &Hero{}, nil
	case TypeHeading:
		return &Heading{}, nil
	case TypeSubheading:
		return &Subheading{}, nil
	case TypeText:
		return &Text{}, nil
	case TypeMarkdown:
		return &Markdown{}, nil
	case TypeInteractive:
		return &Interactive{}, nil
	case TypeCode:
		return &Code{}, nil
	case TypeCallout:
		return &Callout{}, nil
	case TypeList:
		return &List{}, nil
	case TypeImage:
		return &Image{}, nil
	case TypeVideo:
		return &Video{}, nil
	case TypeQuote:
		return &Quote{}, nil
	case TypeTable:
		return &Table{}, nil
	case TypeTimeline:
		return &Timeline{}, nil
	case TypeMetrics:
		return &Metrics{}, nil
	case TypeSeparator:
		return &Separator{}, nil
	case TypeTwoColumn:
		return &TwoColumn{}, nil
	case TypeTabs:
		return &Tabs{}, nil
	case TypeAccordion:
		return &Accordion{}, nil
	case TypeEmbed:
		return &Embed{}, nil
	}
	return nil, &UnknownBlockTypeError{Type: string(t)}
}

func deref(b Block) Block {
	switch v := b.(type) {
	case *Hero:
		return *v
	case *Heading:
		return *v
	case *Subheading:
		return *v
	case *Text:
		return *v
	case *Markdown:
		return *v
	case *Interactive:
		return *v
	case *Code:
		return *v
	case *Callout:
		return *v
	case *List:
		return *v
	case *Image:
		return *v
	case *Video:
		return *v
	case *Quote:
		return *v
	case *Table:
		return *v
	case *Timeline:
		return *v
	case *Metrics:
		return *v
	case *Separator:
		return *v
	case *TwoColumn:
		return *v
	case *Tabs:
		return *v
	case *Accordion:
		return *v
	case *Embed:
		return *v
	}
	return b
}

// tagged prepends the type discriminator to the variant's own JSON object.
// Callers pass an alias type so the variant's MarshalJSON does not recurse.
func tagged(t BlockType, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(raw) < 2 || raw[0] != '{' {
		return nil, fmt.Errorf("content: block %q did not encode as an object", t)
	}

	head, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(raw)+len(head)+9)
	out = append(out, '{')
	out = append(out, `"type":`...)
	out = append(out, head...)
	if string(raw) != "{}" {
		out = append(out, ',')
	}
	out = append(out, raw[1:]...)
	return out, nil
}

func (b Hero) MarshalJSON() ([]byte, error) {
	type alias Hero
	return tagged(TypeHero, alias(b))
}

func (b Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return tagged(TypeHeading, alias(b))
}

func (b Subheading) MarshalJSON() ([]byte, error) {
	type alias Subheading
	return tagged(TypeSubheading, alias(b))
}

func (b Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return tagged(TypeText, alias(b))
}

func (b Markdown) MarshalJSON() ([]byte, error) {
	type alias Markdown
	return tagged(TypeMarkdown, alias(b))
}

func (b Interactive) MarshalJSON() ([]byte, error) {
	type alias Interactive
	return tagged(TypeInteractive, alias(b))
}

func (b Code) MarshalJSON() ([]byte, error) {
	type alias Code
	return tagged(TypeCode, alias(b))
}

func (b Callout) MarshalJSON() ([]byte, error) {
	type alias Callout
	return tagged(TypeCallout, alias(b))
}

func (b List) MarshalJSON() ([]byte, error) {
	type alias List
	return tagged(TypeList, alias(b))
}

func (b Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return tagged(TypeImage, alias(b))
}

func (b Video) MarshalJSON() ([]byte, error) {
	type alias Video
	return tagged(TypeVideo, alias(b))
}

func (b Quote) MarshalJSON() ([]byte, error) {
	type alias Quote
	return tagged(TypeQuote, alias(b))
}

func (b Table) MarshalJSON() ([]byte, error) {
	type alias Table
	return tagged(TypeTable, alias(b))
}

func (b Timeline) MarshalJSON() ([]byte, error) {
	type alias Timeline
	return tagged(TypeTimeline, alias(b))
}

func (b Metrics) MarshalJSON() ([]byte, error) {
	type alias Metrics
	return tagged(TypeMetrics, alias(b))
}

func (b Separator) MarshalJSON() ([]byte, error) {
	type alias Separator
	return tagged(TypeSeparator, alias(b))
}

func (b TwoColumn) MarshalJSON() ([]byte, error) {
	type alias TwoColumn
	return tagged(TypeTwoColumn, alias(b))
}

func (b Tabs) MarshalJSON() ([]byte, error) {
	type alias Tabs
	return tagged(TypeTabs, alias(b))
}

func (b Accordion) MarshalJSON() ([]byte, error) {
	type alias Accordion
	return tagged(TypeAccordion, alias(b))
}

func (b Embed) MarshalJSON() ([]byte, error) {
	type alias Embed
	return tagged(TypeEmbed, alias(b))
}
