// Package fieldschema is the single source of truth for what a valid
// application looks like. The JSON Schema documents embedded here are served
// verbatim to browsers via GET /api/schemas/:kind and evaluated server side
// before anything is persisted, so the two sides cannot drift.
//
// The schemas intentionally keep otherIndustry/otherPlatform optional even
// though the form UI requires them when the matching selector is "other";
// the client package layers that conditional check on top. Industry,
// companySize and platform are validated as non-empty strings rather than
// strict enums: unrecognized tokens are accepted here and collapsed to their
// fallback canonical value by the normalizer.
package fieldschema

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Kind selects which application schema applies.
type Kind string

const (
	KindBrand   Kind = "brand"
	KindCreator Kind = "creator"
	KindContact Kind = "contact"
)

var kinds = []Kind{KindBrand, KindCreator, KindContact}

var (
	rawSchemas map[Kind][]byte
	compiled   map[Kind]*gojsonschema.Schema
)

func init() {
	rawSchemas = make(map[Kind][]byte, len(kinds))
	compiled = make(map[Kind]*gojsonschema.Schema, len(kinds))
	for _, kind := range kinds {
		raw, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.json", kind))
		if err != nil {
			panic(fmt.Sprintf("fieldschema: missing schema for %s: %v", kind, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("fieldschema: invalid schema for %s: %v", kind, err))
		}
		rawSchemas[kind] = raw
		compiled[kind] = schema
	}
}

// Messages shown instead of the raw validator description, mirroring the
// wording the site has always used.
var fieldMessages = map[Kind]map[string]string{
	KindBrand: {
		"brandName":    "Brand name is required",
		"contactName":  "Contact person name is required",
		"contactTitle": "Contact person title is required",
		"description":  "Please provide a brief description of your brand",
		"email":        "Valid email is required",
	},
	KindCreator: {
		"socialMediaId": "Social media ID is required",
		"email":         "Valid email is required",
	},
	KindContact: {
		"name":  "Name is required",
		"email": "Valid email is required",
	},
}

// ValidKind reports whether s names one of the embedded schemas.
func ValidKind(s string) bool {
	for _, kind := range kinds {
		if string(kind) == s {
			return true
		}
	}
	return false
}

// Raw returns the schema document exactly as embedded. Handlers serve these
// bytes so the client validates against the same definition.
func Raw(kind Kind) ([]byte, error) {
	raw, ok := rawSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	return raw, nil
}

// Validate checks payload against the schema for kind and returns one
// human-readable message per failing field. An empty map means the payload
// is valid. The payload is not mutated.
//
// Empty-string and absent values are treated identically: optional fields
// submitted as "" are dropped before evaluation. Unknown fields are ignored
// by the schemas (additionalProperties defaults to true).
func Validate(kind Kind, payload map[string]interface{}) (map[string]string, error) {
	schema, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}

	doc := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		if value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		doc[key] = value
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	errs := make(map[string]string)
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			if prop, ok := desc.Details()["property"].(string); ok {
				field = prop
			}
		}
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := fieldMessages[kind][field]; ok {
			errs[field] = msg
		} else {
			errs[field] = desc.Description()
		}
	}
	return errs, nil
}
