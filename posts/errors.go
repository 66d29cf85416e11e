package posts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSlugRequired   = errors.New("posts: slug is required")
	ErrPostNotFound   = errors.New("posts: post not found")
	ErrPostExists     = errors.New("posts: post already exists")
	ErrInvalidPayload = errors.New("posts: invalid post payload")
)

// NotFoundError reports a lookup miss with the slug that was requested.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("posts: post %q not found", e.Slug)
}

func (e *NotFoundError) Unwrap() error { return ErrPostNotFound }

// SchemaIssue captures a single JSON schema validation failure.
type SchemaIssue struct {
	Location string
	Message  string
}

// PayloadError surfaces schema validation issues for an imported document.
type PayloadError struct {
	Issues []SchemaIssue
	Cause  error
}

func (e *PayloadError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrInvalidPayload.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadError) Unwrap() error { return ErrInvalidPayload }
