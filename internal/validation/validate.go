// Package validation checks incoming task payloads before the store sees
// them. Payload fields stay as raw JSON so presence and JSON type are
// verified independently and every failing rule is reported at once.
package validation

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TaskPayload holds the raw fields of a create or update request body.
type TaskPayload struct {
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Completed   json.RawMessage `json:"completed"`
}

// Fields is a validated payload, trimmed and ready for the store.
type Fields struct {
	Title       string
	Description string
	Completed   bool
}

// CheckCreate validates a create payload. completed may be omitted and
// defaults to false.
func CheckCreate(p TaskPayload) (Fields, []string) {
	return check(p, false)
}

// CheckUpdate validates an update payload. An update replaces every mutable
// field, so completed is required.
func CheckUpdate(p TaskPayload) (Fields, []string) {
	return check(p, true)
}

func check(p TaskPayload, requireCompleted bool) (Fields, []string) {
	var f Fields
	var errs []string
	if msg := checkText(p.Title, "title", &f.Title); msg != "" {
		errs = append(errs, msg)
	}
	if msg := checkText(p.Description, "description", &f.Description); msg != "" {
		errs = append(errs, msg)
	}
	switch completed := present(p.Completed); {
	case completed == nil:
		if requireCompleted {
			errs = append(errs, "completed is required")
		}
	case json.Unmarshal(completed, &f.Completed) != nil:
		errs = append(errs, "completed must be a boolean")
	}
	return f, errs
}

func checkText(raw json.RawMessage, field string, dst *string) string {
	raw = present(raw)
	if raw == nil {
		return field + " is required"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return field + " must be a string"
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return field + " must not be empty"
	}
	*dst = s
	return ""
}

// present treats JSON null the same as an omitted field.
func present(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// ParseID parses a path id. Only integers strictly greater than zero are
// valid task ids.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
