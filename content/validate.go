package content

import (
	"fmt"
	"strings"
)

// ValidationResult reports every structural failure found in a block
// sequence. Failures are data, not errors; callers decide whether to refuse
// the sequence.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateContent walks the sequence once and checks each block's
// required-field constraints, accumulating human-readable messages instead
// of stopping at the first failure.
func ValidateContent(blocks Blocks) ValidationResult {
	var errs []string

	for i, block := range blocks {
		switch b := block.(type) {
		case Code:
			if strings.TrimSpace(b.Content) == "" {
				errs = append(errs, fmt.Sprintf("code block at index %d has empty content", i))
			}
		case Image:
			if b.Src == "" || b.Alt == "" {
				errs = append(errs, fmt.Sprintf("image at index %d missing required src or alt text", i))
			}
		case Table:
			if len(b.Headers) == 0 || len(b.Rows) == 0 {
				errs = append(errs, fmt.Sprintf("table at index %d missing headers or rows", i))
			}
		case Timeline:
			if len(b.Items) == 0 {
				errs = append(errs, fmt.Sprintf("timeline at index %d has no items", i))
			}
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
