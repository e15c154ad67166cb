// Package gemini enriches profile metadata from page text using Google
// Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/recontact"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Enricher implements recontact.Enricher at compile time.
var _ recontact.Enricher = (*Enricher)(nil)

// Enricher implements recontact.Enricher using Google Gemini. It fills
// profile fields that selector-based scraping missed; the pipeline
// treats its output as additive only.
type Enricher struct {
	client *genai.Client
}

// NewEnricher creates a new Enricher.
func NewEnricher(client *genai.Client) *Enricher {
	return &Enricher{client: client}
}

// Enrich extracts profile fields from page text.
func (e *Enricher) Enrich(ctx context.Context, text string) (*recontact.Profile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, recontact.Errorf(recontact.EINVALID, "text required")
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, recontact.Errorf(recontact.EINTERNAL, "gemini returned nil result")
	}

	return ParseProfile(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Low temperature and a JSON response type keep the output parseable.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract person and company metadata from web page text. " +
					"Respond with a JSON object with the keys name, title, company, and location. " +
					"Use null for any field the text does not state. Never guess.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the page text.
func BuildUserPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	sb.WriteString(text)
	sb.WriteString("\n</page>\n\n")
	sb.WriteString("Extract the profile fields from the page text above.")
	return sb.String()
}

// ParseProfile parses the model's JSON response into a Profile. Empty
// strings are treated as null.
func ParseProfile(response string) (*recontact.Profile, error) {
	var raw struct {
		Name     *string `json:"name"`
		Title    *string `json:"title"`
		Company  *string `json:"company"`
		Location *string `json:"location"`
	}
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return nil, fmt.Errorf("unparseable enrichment response: %w", err)
	}

	return &recontact.Profile{
		Name:     nonEmpty(raw.Name),
		Title:    nonEmpty(raw.Title),
		Company:  nonEmpty(raw.Company),
		Location: nonEmpty(raw.Location),
	}, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
