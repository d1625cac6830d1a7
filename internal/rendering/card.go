// Package rendering turns a sanitized showcase record into its Markdown card.
package rendering

import (
	"strings"
	"text/template"
)

// maxHighlights caps the Highlights section; extra items are silently dropped.
const maxHighlights = 6

// CardData is the data structure passed to the card template.
type CardData struct {
	Title         string
	OneLiner      string
	ScreenshotURL string
	Facts         []Fact
	Problem       string
	Solution      string
	Highlights    []string
}

// Fact is one line of the card's bullet list.
type Fact struct {
	Label string
	Value string
}

const cardTemplate = `## {{.Title}}

{{.OneLiner}}

{{if .ScreenshotURL -}}
![{{.Title}} screenshot]({{.ScreenshotURL}})

{{end -}}
{{range .Facts -}}
- {{.Label}}: {{.Value}}
{{end}}
### Problem

{{.Problem}}

### Solution

{{.Solution}}
{{if .Highlights}}
### Highlights

{{range .Highlights -}}
- {{.}}
{{end -}}
{{end -}}
`

var cardTmpl = template.Must(template.New("card").Parse(cardTemplate))

// RenderCard renders the Markdown project card for a sanitized record. The
// output ends with a single trailing newline and user content is emitted
// verbatim, with no escaping or wrapping.
func RenderCard(data map[string]any) (string, error) {
	var out strings.Builder
	if err := cardTmpl.Execute(&out, BuildCardData(data)); err != nil {
		return "", &RenderError{Message: "failed to execute card template", Cause: err}
	}
	return out.String(), nil
}

// BuildCardData assembles the template inputs from a sanitized record: status
// defaulting, comma-joined lists, conditional fact lines in fixed order, and
// highlight truncation.
func BuildCardData(data map[string]any) CardData {
	card := CardData{
		Title:    stringField(data, "title"),
		OneLiner: stringField(data, "one_liner"),
		Problem:  stringField(data, "problem"),
		Solution: stringField(data, "solution"),
	}

	if url := stringField(data, "screenshot_url"); strings.TrimSpace(url) != "" {
		card.ScreenshotURL = url
	}

	status := stringField(data, "status")
	if status == "" {
		status = "active"
	}
	card.Facts = append(card.Facts,
		Fact{Label: "Status", Value: status},
		Fact{Label: "Updated", Value: stringField(data, "updated_at")},
		Fact{Label: "Stack", Value: strings.Join(stringList(data, "stack"), ", ")},
		Fact{Label: "Impact", Value: stringField(data, "impact")},
	)
	if demo := stringField(data, "demo_url"); demo != "" {
		card.Facts = append(card.Facts, Fact{Label: "Demo", Value: demo})
	}
	if article := stringField(data, "article_url"); article != "" {
		card.Facts = append(card.Facts, Fact{Label: "Write-up", Value: article})
	}
	if note := stringField(data, "visibility_note"); note != "" {
		card.Facts = append(card.Facts, Fact{Label: "Visibility", Value: note})
	}
	if tags := stringList(data, "tags"); len(tags) > 0 {
		card.Facts = append(card.Facts, Fact{Label: "Tags", Value: strings.Join(tags, ", ")})
	}

	card.Highlights = stringList(data, "highlights")
	if len(card.Highlights) > maxHighlights {
		card.Highlights = card.Highlights[:maxHighlights]
	}

	return card
}

func stringField(data map[string]any, key string) string {
	value, _ := data[key].(string)
	return value
}

func stringList(data map[string]any, key string) []string {
	items, _ := data[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
