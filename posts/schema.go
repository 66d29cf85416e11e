package posts

import (
	"bytes"
	"encoding/json"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// postSchema validates imported post documents before they are decoded into
// the typed model. Block payloads are checked structurally; the JSON codec
// enforces per-variant field types afterwards.
const postSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "title", "date", "tags", "content"],
  "properties": {
    "id": {"type": "integer", "minimum": 1},
    "title": {"type": "string", "minLength": 1},
    "excerpt": {"type": "string"},
    "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "tags": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "reactions": {"type": "integer", "minimum": 0},
    "readTime": {"type": "string"},
    "heroGradient": {"type": "string"},
    "slug": {"type": "string"},
    "author": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "url": {"type": "string"}
      }
    },
    "cover": {"type": "string"},
    "summary": {"type": "string"},
    "updated": {"type": "string"},
    "content": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var compiledPostSchema = mustCompileSchema(postSchema)

func mustCompileSchema(source string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("post.json", bytes.NewReader([]byte(source))); err != nil {
		panic("posts: add schema resource: " + err.Error())
	}
	schema, err := compiler.Compile("post.json")
	if err != nil {
		panic("posts: compile schema: " + err.Error())
	}
	return schema
}

// validatePostDocument checks a raw JSON document against the post schema.
func validatePostDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &PayloadError{Cause: err}
	}
	if err := compiledPostSchema.Validate(doc); err != nil {
		return &PayloadError{
			Issues: collectSchemaIssues(err),
			Cause:  err,
		}
	}
	return nil
}

func collectSchemaIssues(err error) []SchemaIssue {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []SchemaIssue{{Message: err.Error()}}
	}

	issues := []SchemaIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, SchemaIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return issues
}
