package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.json")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

const minimalInput = `{"title":"T","one_liner":"O","problem":"P","solution":"S","impact":"I","stack":["Go"]}`

func TestOptions_Validate(t *testing.T) {
	opts := &Options{Input: "in.json", OutJSON: "out.json", OutMD: "out.md"}
	assert.NoError(t, opts.Validate())

	missing := &Options{Input: "in.json"}
	assert.Error(t, missing.Validate())
}

func TestRun_WritesBothArtifacts(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")
	outDir := t.TempDir()
	outJSON := filepath.Join(outDir, "public", "meta", "showcase.json")
	outMD := filepath.Join(outDir, "public", "cards", "showcase.md")

	err := Run(Options{
		Input:   writeInput(t, minimalInput),
		OutJSON: outJSON,
		OutMD:   outMD,
	})
	require.NoError(t, err)

	jsonRaw, err := os.ReadFile(outJSON)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(jsonRaw, &out))
	assert.Contains(t, out, "project_id")
	assert.Contains(t, out, "generated_at")
	assert.Contains(t, out, "updated_at")
	assert.Equal(t, "T", out["title"])
	assert.Len(t, out, 9)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(wd), out["project_id"])

	// 2-space indentation and a single trailing newline.
	text := string(jsonRaw)
	assert.Contains(t, text, "\n  \"title\": \"T\"")
	assert.True(t, strings.HasSuffix(text, "}\n"))

	mdRaw, err := os.ReadFile(outMD)
	require.NoError(t, err)
	md := string(mdRaw)
	assert.True(t, strings.HasPrefix(md, "## T\n"))
	assert.Contains(t, md, "- Stack: Go\n")
}

func TestRun_JSONKeysSorted(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")
	outDir := t.TempDir()
	outJSON := filepath.Join(outDir, "showcase.json")

	err := Run(Options{
		Input:   writeInput(t, minimalInput),
		OutJSON: outJSON,
		OutMD:   filepath.Join(outDir, "showcase.md"),
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outJSON)
	require.NoError(t, err)

	// Top-level keys sit at exactly two spaces of indentation.
	var keys []string
	for _, line := range strings.Split(string(raw), "\n") {
		if !strings.HasPrefix(line, "  \"") {
			continue
		}
		end := strings.Index(line[3:], "\"")
		require.GreaterOrEqual(t, end, 0)
		keys = append(keys, line[3:3+end])
	}
	require.NotEmpty(t, keys)
	assert.IsNonDecreasing(t, keys)
}

func TestRun_SourceRepoFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "acme/widget")
	outDir := t.TempDir()
	outJSON := filepath.Join(outDir, "showcase.json")

	err := Run(Options{
		Input:   writeInput(t, minimalInput),
		OutJSON: outJSON,
		OutMD:   filepath.Join(outDir, "showcase.md"),
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outJSON)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "widget", out["project_id"])
	assert.Equal(t, "acme/widget", out["source_repo"])
}

func TestRun_InputNotFound(t *testing.T) {
	outDir := t.TempDir()

	err := Run(Options{
		Input:   filepath.Join(outDir, "missing.json"),
		OutJSON: filepath.Join(outDir, "out.json"),
		OutMD:   filepath.Join(outDir, "out.md"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Input file not found")
}

func TestRun_TopLevelArrayRejected(t *testing.T) {
	outDir := t.TempDir()

	err := Run(Options{
		Input:   writeInput(t, `["not","an","object"]`),
		OutJSON: filepath.Join(outDir, "out.json"),
		OutMD:   filepath.Join(outDir, "out.md"),
	})
	require.Error(t, err)
	assert.Equal(t, "Input must be a JSON object", err.Error())
}

func TestRun_TopLevelNullRejected(t *testing.T) {
	outDir := t.TempDir()

	err := Run(Options{
		Input:   writeInput(t, `null`),
		OutJSON: filepath.Join(outDir, "out.json"),
		OutMD:   filepath.Join(outDir, "out.md"),
	})
	require.Error(t, err)
	assert.Equal(t, "Input must be a JSON object", err.Error())
}

func TestRun_MalformedJSON(t *testing.T) {
	outDir := t.TempDir()

	err := Run(Options{
		Input:   writeInput(t, `{"title": `),
		OutJSON: filepath.Join(outDir, "out.json"),
		OutMD:   filepath.Join(outDir, "out.md"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse input JSON")
}

func TestRun_ValidationFailureWritesNothing(t *testing.T) {
	outDir := t.TempDir()
	outJSON := filepath.Join(outDir, "out.json")
	outMD := filepath.Join(outDir, "out.md")

	err := Run(Options{
		Input:   writeInput(t, `{"title":"T"}`),
		OutJSON: outJSON,
		OutMD:   outMD,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required keys")

	_, statErr := os.Stat(outJSON)
	assert.True(t, os.IsNotExist(statErr), "JSON output must not exist after a failed run")
	_, statErr = os.Stat(outMD)
	assert.True(t, os.IsNotExist(statErr), "Markdown output must not exist after a failed run")
}

func TestRun_SensitiveContentBlocks(t *testing.T) {
	outDir := t.TempDir()
	input := `{"title":"T","one_liner":"O","problem":"P","solution":"S","impact":"I","stack":["Go"],"highlights":["stores the admin password"]}`

	err := Run(Options{
		Input:   writeInput(t, input),
		OutJSON: filepath.Join(outDir, "out.json"),
		OutMD:   filepath.Join(outDir, "out.md"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sensitive-looking content detected")
}
