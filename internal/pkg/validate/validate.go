// Package validate implements presence-only validation of request
// payloads against a required-field schema.
package validate

import "strings"

// Field pairs a payload field's wire name with whether the request
// actually carried it.
type Field struct {
	Name    string
	Present bool
}

// MissingFieldsError reports the required fields a request left out.
// Names are uppercased for the user-visible message.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing properties from request: " + strings.Join(e.Fields, ", ")
}

// Required checks that every field is present. Validation is shallow:
// presence only, no type or range checks.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if !f.Present {
			missing = append(missing, strings.ToUpper(f.Name))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldsError{Fields: missing}
}
