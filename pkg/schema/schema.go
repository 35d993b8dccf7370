// Package schema validates inbound JSON objects against a small declarative
// schema. The error message for a missing required field is part of the wire
// contract: clients match on `'<field>' is a required property` verbatim, so
// the wording here must never change.
package schema

// PropertyType enumerates the supported property types.
type PropertyType string

const (
	String PropertyType = "string"
)

// Object describes a JSON object: its typed properties and which of them are
// required. Required fields are checked in declaration order so the first
// missing one wins.
type Object struct {
	Properties map[string]PropertyType
	Required   []string
}

// ValidationError carries the client-facing message for a schema failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks data against the schema and returns a *ValidationError on
// the first failure.
func (s Object) Validate(data map[string]interface{}) error {
	for _, field := range s.Required {
		if _, ok := data[field]; !ok {
			return &ValidationError{
				Message: "'" + field + "' is a required property",
			}
		}
	}

	for field, typ := range s.Properties {
		value, ok := data[field]
		if !ok {
			continue
		}

		switch typ {
		case String:
			if _, ok := value.(string); !ok {
				return &ValidationError{
					Message: "'" + field + "' is not of type 'string'",
				}
			}
		}
	}

	return nil
}

// Login is the POST /login body schema.
var Login = Object{
	Properties: map[string]PropertyType{
		"username": String,
		"password": String,
	},
	Required: []string{"username", "password"},
}

// RefreshToken is the POST /token body schema.
var RefreshToken = Object{
	Properties: map[string]PropertyType{
		"token": String,
	},
	Required: []string{"token"},
}

// StickerCreate is the body schema shared by sticker create and update.
var StickerCreate = Object{
	Properties: map[string]PropertyType{
		"title":       String,
		"description": String,
	},
	Required: []string{"title", "description"},
}
