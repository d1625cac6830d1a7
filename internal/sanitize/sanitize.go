// Package sanitize projects a validated showcase entry onto the publishable
// allowlist and stamps the derived fields.
package sanitize

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/showcase-card/internal/types"
)

// Context carries the ambient inputs sanitization depends on. Sanitize is a
// pure function of the entry and the context.
type Context struct {
	Now        time.Time // current instant, formatted in UTC
	SourceRepo string    // external "owner/name" identifier, empty when unset
	WorkingDir string    // fallback for project-id resolution
}

// Sanitize returns the publishable record: allowlisted keys copied from the
// entry plus the computed project_id, generated_at, updated_at and, when an
// external repository identifier is known, source_repo. No other keys appear
// in the output.
func Sanitize(data map[string]any, ctx Context) map[string]any {
	out := make(map[string]any, len(types.AllowedKeys)+4)
	for _, key := range types.AllowedKeys {
		if value, ok := data[key]; ok {
			out[key] = value
		}
	}

	now := ctx.Now.UTC()
	out["project_id"] = resolveProjectID(data, ctx)
	out["generated_at"] = now.Format(time.RFC3339)
	if _, ok := out["updated_at"]; !ok {
		out["updated_at"] = now.Format("2006-01-02")
	}
	if ctx.SourceRepo != "" {
		out["source_repo"] = ctx.SourceRepo
	}
	return out
}

// resolveProjectID picks the repository name the entry is published under. An
// externally supplied identifier wins; otherwise the entry's own `repo` field,
// reduced to its final path segment; otherwise the working directory's name.
func resolveProjectID(data map[string]any, ctx Context) string {
	if ctx.SourceRepo != "" {
		segments := strings.Split(ctx.SourceRepo, "/")
		return segments[len(segments)-1]
	}
	if repo, ok := data["repo"].(string); ok && strings.TrimSpace(repo) != "" {
		return filepath.Base(repo)
	}
	return filepath.Base(ctx.WorkingDir)
}
