package recontact

// ExtractResult holds the visible content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the visible text of the main content with boilerplate
	// markup removed.
	Text string
}

// Extractor extracts visible text from HTML pages for pattern matching.
type Extractor interface {
	// Extract processes raw HTML and returns the visible content.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown. The pipeline matches patterns over
// the markdown rendering as well, so contacts present only in attributes
// (mailto:/tel: hrefs) still surface as candidates.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
