// Package htmltomarkdown renders HTML as Markdown. The rendering keeps
// link destinations, so mailto: and tel: hrefs that never appear as
// visible page text become matchable.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/recontact"
)

var _ recontact.Converter = (*Converter)(nil)

// Converter implements recontact.Converter using html-to-markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
}

// Convert renders HTML content as Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", recontact.Errorf(recontact.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
