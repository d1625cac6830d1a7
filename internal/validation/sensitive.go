// Package validation checks showcase entries for shape, content, and
// sensitive-looking strings before any artifact is written.
package validation

import "regexp"

// sensitivePatterns flags credential-shaped content anywhere in an entry.
// Intentionally over-broad: plain words like "secret" or "password" block
// publishing even in benign prose.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`(?i)aws_secret_access_key`),
	regexp.MustCompile(`(?i)api[_-]?key`),
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`-----BEGIN (RSA|EC|DSA|OPENSSH|PRIVATE) KEY-----`),
	regexp.MustCompile(`ghp_[A-Za-z0-9]{30,}`),
}

// ScanSensitive walks every string leaf in the entry, at any nesting depth,
// and fails on the first value matching a sensitive pattern. Only values are
// scanned, never keys.
func ScanSensitive(data map[string]any) error {
	if containsSensitive(data) {
		return &Error{Message: "Sensitive-looking content detected in metadata. Remove secrets from .showcase.json before publishing."}
	}
	return nil
}

func containsSensitive(value any) bool {
	switch v := value.(type) {
	case string:
		for _, pattern := range sensitivePatterns {
			if pattern.MatchString(v) {
				return true
			}
		}
	case map[string]any:
		for _, item := range v {
			if containsSensitive(item) {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if containsSensitive(item) {
				return true
			}
		}
	}
	return false
}
