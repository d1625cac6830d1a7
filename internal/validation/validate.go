// Package validation checks showcase entries for shape, content, and
// sensitive-looking strings before any artifact is written.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jonathan/showcase-card/internal/schemas"
	"github.com/jonathan/showcase-card/internal/types"
)

// requiredStringKeys are the required keys holding a single free-text value.
// `stack` is required too but carries its own list rule.
var requiredStringKeys = []string{"title", "one_liner", "problem", "solution", "impact"}

// isoDateShape pins updated_at to the zero-padded YYYY-MM-DD form before the
// calendar check runs; time.Parse alone accepts unpadded components.
var isoDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateEntry runs every check a showcase entry must pass before
// sanitization: required-key presence, structural shape, semantic field rules,
// and the sensitive-content scan. The first failing check wins.
func ValidateEntry(data map[string]any) error {
	if missing := missingRequiredKeys(data); len(missing) > 0 {
		return &Error{Message: fmt.Sprintf("Missing required keys: %s", strings.Join(missing, ", "))}
	}

	if err := schemas.ValidateEntry(data); err != nil {
		return err
	}

	if err := validateRequiredStrings(data); err != nil {
		return err
	}
	if err := validateStack(data["stack"]); err != nil {
		return err
	}
	if err := validateUpdatedAt(data); err != nil {
		return err
	}

	return ScanSensitive(data)
}

func missingRequiredKeys(data map[string]any) []string {
	var missing []string
	for _, key := range types.RequiredKeys {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

func validateRequiredStrings(data map[string]any) error {
	for _, key := range requiredStringKeys {
		value, ok := data[key].(string)
		if !ok || strings.TrimSpace(value) == "" {
			return &Error{Message: fmt.Sprintf("`%s` must be a non-empty string", key)}
		}
	}
	return nil
}

func validateStack(value any) error {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return &Error{Message: "`stack` must be a non-empty list of strings"}
	}
	for _, item := range items {
		entry, ok := item.(string)
		if !ok || strings.TrimSpace(entry) == "" {
			return &Error{Message: "`stack` must be a non-empty list of strings"}
		}
	}
	return nil
}

func validateUpdatedAt(data map[string]any) error {
	raw, present := data["updated_at"]
	if !present {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return &Error{Message: "`updated_at` must be an ISO date (YYYY-MM-DD)"}
	}
	if err := ozzo.Validate(value,
		ozzo.Required,
		ozzo.Match(isoDateShape),
		ozzo.Date("2006-01-02"),
	); err != nil {
		return &Error{Message: "`updated_at` must be an ISO date (YYYY-MM-DD)", Cause: err}
	}
	return nil
}
