package goquery_test

import (
	"testing"

	"github.com/fwojciec/recontact/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor_ExtractProfile(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="vcard">
			<span class="fn">Jane Roe</span>
		</div>
		<p class="job-title">Head of Engineering</p>
		<p class="company">Example Corp</p>
		<p class="location">Berlin, Germany</p>
	</body></html>`

	profile, err := goquery.NewGenericExtractor().ExtractProfile(html)
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jane Roe", *profile.Name)
	require.NotNil(t, profile.Title)
	assert.Equal(t, "Head of Engineering", *profile.Title)
	require.NotNil(t, profile.Company)
	assert.Equal(t, "Example Corp", *profile.Company)
	require.NotNil(t, profile.Location)
	assert.Equal(t, "Berlin, Germany", *profile.Location)
}

func TestGenericExtractor_MissingFieldsAreNil(t *testing.T) {
	t.Parallel()

	html := `<html><body><span class="fn">Jane Roe</span></body></html>`

	profile, err := goquery.NewGenericExtractor().ExtractProfile(html)
	require.NoError(t, err)

	assert.Nil(t, profile.Name, "fn without a vcard ancestor does not match")
	assert.Nil(t, profile.Title)
	assert.Nil(t, profile.Company)
	assert.Nil(t, profile.Location)
}

func TestGenericExtractor_Microdata(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">John Doe</span>
			<span itemprop="jobTitle">Staff Engineer</span>
		</div>
	</body></html>`

	profile, err := goquery.NewGenericExtractor().ExtractProfile(html)
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "John Doe", *profile.Name)
	require.NotNil(t, profile.Title)
	assert.Equal(t, "Staff Engineer", *profile.Title)
}

func TestGenericExtractor_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	html := `<div class="vcard"><span class="fn">
		Jane
		Roe
	</span></div>`

	profile, err := goquery.NewGenericExtractor().ExtractProfile(html)
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jane Roe", *profile.Name)
}

func TestLinkedInExtractor_ExtractProfile(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<h1 class="top-card-layout__title">John Doe</h1>
		<h2 class="top-card-layout__headline">Staff Engineer at Example Corp</h2>
		<div class="top-card-layout__first-subline">
			<span class="top-card__subline-item">San Francisco Bay Area</span>
		</div>
	</body></html>`

	profile, err := goquery.NewLinkedInExtractor().ExtractProfile(html)
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "John Doe", *profile.Name)
	require.NotNil(t, profile.Title)
	assert.Equal(t, "Staff Engineer at Example Corp", *profile.Title)
	require.NotNil(t, profile.Location)
	assert.Equal(t, "San Francisco Bay Area", *profile.Location)
	assert.Nil(t, profile.Company)
}

func TestExtractorNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "generic", goquery.NewGenericExtractor().Name())
	assert.Equal(t, "linkedin", goquery.NewLinkedInExtractor().Name())
	assert.Equal(t, "xing", goquery.NewXingExtractor().Name())
	assert.Equal(t, "crunchbase", goquery.NewCrunchbaseExtractor().Name())
}
