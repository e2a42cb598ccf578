package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNetwork = errors.New("Could not reach the server. Please try again.")

// errorBody covers the shapes the backend has been seen returning: a detail
// string, a message string, or an array of field-level validation objects.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// normalizeError collapses any backend error response into one message so
// nothing downstream has to know about the shapes above.
func normalizeError(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Detail != "" {
			return errors.New(body.Detail)
		}
		if body.Message != "" {
			return errors.New(body.Message)
		}
		if len(body.Errors) > 0 {
			parts := make([]string, 0, len(body.Errors))
			for _, fieldErr := range body.Errors {
				if fieldErr.Field != "" {
					parts = append(parts, fieldErr.Field+": "+fieldErr.Message)
				} else {
					parts = append(parts, fieldErr.Message)
				}
			}
			return errors.New(strings.Join(parts, "; "))
		}
	}

	return fmt.Errorf("Request failed with status %d.", status)
}
