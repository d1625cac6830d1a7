// Package pipeline orchestrates a single showcase run: read one entry,
// validate it, sanitize it, and write the JSON and Markdown artifacts.
package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/showcase-card/internal/rendering"
	"github.com/jonathan/showcase-card/internal/sanitize"
	"github.com/jonathan/showcase-card/internal/validation"
)

// sourceRepoEnv names the optional CI-supplied "owner/name" identifier
// consulted during sanitization.
const sourceRepoEnv = "GITHUB_REPOSITORY"

// Options holds the three artifact paths a run operates on.
type Options struct {
	Input   string `validate:"required"`
	OutJSON string `validate:"required"`
	OutMD   string `validate:"required"`
}

// Validate validates the Options using the validator.
func (o *Options) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Run executes the full pipeline. Both output files are written only after
// every validation step has passed; a failure leaves no partial artifacts.
func Run(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	data, err := readEntry(opts.Input)
	if err != nil {
		return err
	}

	if err := validation.ValidateEntry(data); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	safe := sanitize.Sanitize(data, sanitize.Context{
		Now:        time.Now(),
		SourceRepo: os.Getenv(sourceRepoEnv),
		WorkingDir: wd,
	})

	card, err := rendering.RenderCard(safe)
	if err != nil {
		return err
	}

	if err := writeJSON(opts.OutJSON, safe); err != nil {
		return err
	}
	return writeMarkdown(opts.OutMD, card)
}

// readEntry reads and decodes the input file, rejecting anything whose top
// level is not a JSON object.
func readEntry(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("Input file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.New("Input must be a JSON object")
		}
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	if data == nil {
		// json.Unmarshal accepts a top-level null without error.
		return nil, errors.New("Input must be a JSON object")
	}
	return data, nil
}

func writeJSON(path string, data map[string]any) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode sanitized record: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write JSON output %s: %w", path, err)
	}
	return nil
}

func writeMarkdown(path, card string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(card), 0644); err != nil {
		return fmt.Errorf("failed to write Markdown output %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
