package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFields    = errors.New("content: post builder missing required fields")
	ErrUnknownBlockType = errors.New("content: unknown block type")
	ErrInvalidBlockJSON = errors.New("content: invalid block payload")
)

// MissingFieldsError reports which required post fields were absent when
// PostBuilder.Build was called. It is the one hard precondition the core
// enforces; an incomplete post would corrupt the collection layer.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrMissingFields.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMissingFields.Error(), strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// UnknownBlockTypeError reports a discriminator that names no known variant.
type UnknownBlockTypeError struct {
	Type string
}

func (e *UnknownBlockTypeError) Error() string {
	if e == nil {
		return ErrUnknownBlockType.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnknownBlockType.Error(), e.Type)
}

func (e *UnknownBlockTypeError) Unwrap() error {
	return ErrUnknownBlockType
}
