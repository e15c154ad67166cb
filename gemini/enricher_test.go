package gemini_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/recontact/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("Jane Roe is CTO of Example Corp.")

	assert.True(t, strings.HasPrefix(prompt, "<page>\n"))
	assert.Contains(t, prompt, "Jane Roe is CTO of Example Corp.")
	assert.Contains(t, prompt, "</page>")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.1, float64(*config.Temperature), 0.001)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.SystemInstruction)
}

func TestParseProfile(t *testing.T) {
	t.Parallel()

	profile, err := gemini.ParseProfile(`{
		"name": "Jane Roe",
		"title": "CTO",
		"company": null,
		"location": ""
	}`)
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jane Roe", *profile.Name)
	require.NotNil(t, profile.Title)
	assert.Equal(t, "CTO", *profile.Title)
	assert.Nil(t, profile.Company)
	assert.Nil(t, profile.Location, "empty strings count as absent")
}

func TestParseProfile_Malformed(t *testing.T) {
	t.Parallel()

	_, err := gemini.ParseProfile("I could not find anything.")
	assert.Error(t, err)
}
