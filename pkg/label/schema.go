package label

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the JSON Schema for label documents accepted on the
// CLI path. It rejects shape errors (wrong types, unknown formats)
// before evaluation so the engine only sees well-formed input.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["nutrition_data", "format"],
  "properties": {
    "nutrition_data": {
      "type": "object",
      "additionalProperties": {"type": "number"}
    },
    "serving_size_g": {"type": "number", "minimum": 0},
    "serving_size_household": {"type": "string"},
    "servings_per_container": {"type": "number", "exclusiveMinimum": 0},
    "total_product_weight_g": {"type": "number", "exclusiveMinimum": 0},
    "racc_category_id": {"type": "string"},
    "format": {
      "type": "string",
      "enum": ["standard_vertical", "tabular", "linear", "simplified"]
    },
    "package_surface_area": {"type": "number", "exclusiveMinimum": 0},
    "format_exception": {"type": "boolean"},
    "claim_statements": {
      "type": "array",
      "items": {"type": "string"}
    },
    "declared_order": {
      "type": "array",
      "items": {"type": "string"}
    },
    "reference_nutrition_data": {
      "type": "object",
      "additionalProperties": {"type": "number"}
    }
  },
  "additionalProperties": false
}`

// SchemaIssue describes one schema violation in a label document.
type SchemaIssue struct {
	// Field is the JSON path of the offending field.
	Field string

	// Description explains the violation.
	Description string
}

func (i SchemaIssue) String() string {
	if i.Field == "" || i.Field == "(root)" {
		return i.Description
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// ValidateDocument checks a raw JSON label document against the label
// schema. A non-nil error means the document could not be checked at
// all (e.g. invalid JSON); schema violations are returned as issues
// with a nil error.
func ValidateDocument(data []byte) ([]SchemaIssue, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate label document: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]SchemaIssue, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, SchemaIssue{
			Field:       e.Field(),
			Description: e.Description(),
		})
	}
	return issues, nil
}

// ParseDocument validates a raw JSON label document against the schema
// and unmarshals it into a LabelData. Schema violations are returned as
// issues; the returned label is nil unless the document is clean.
func ParseDocument(data []byte) (*LabelData, []SchemaIssue, error) {
	issues, err := ValidateDocument(data)
	if err != nil {
		return nil, nil, err
	}
	if len(issues) > 0 {
		return nil, issues, nil
	}

	var l LabelData
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, nil, fmt.Errorf("failed to decode label document: %w", err)
	}
	return &l, nil, nil
}
