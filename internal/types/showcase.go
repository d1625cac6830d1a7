// Package types defines the shared vocabulary for showcase entries: which keys
// an entry must carry and which keys may pass into sanitized output.
package types

// RequiredKeys lists the keys every showcase entry must carry.
var RequiredKeys = []string{
	"title",
	"one_liner",
	"problem",
	"solution",
	"impact",
	"stack",
}

// AllowedKeys lists the keys permitted to pass from raw input into sanitized
// output. Everything else, including `repo`, is dropped during sanitization.
var AllowedKeys = []string{
	"title",
	"one_liner",
	"problem",
	"solution",
	"impact",
	"stack",
	"status",
	"updated_at",
	"tags",
	"highlights",
	"screenshot_url",
	"demo_url",
	"article_url",
	"visibility_note",
}
