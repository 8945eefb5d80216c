package export

import (
	"fmt"
	"io"

	"github.com/antchfx/htmlquery"
)

const (
	anchorXPath  = "//a[@href]"
	headingXPath = "//h2"
)

// xpathBackend walks the document with htmlquery XPath expressions
type xpathBackend struct{}

func (xpathBackend) Name() string { return "xpath" }

func (xpathBackend) collect(r io.Reader) (candidates, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return candidates{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	anchors, err := htmlquery.QueryAll(doc, anchorXPath)
	if err != nil {
		return candidates{}, fmt.Errorf("invalid xpath %q: %w", anchorXPath, err)
	}
	headings, err := htmlquery.QueryAll(doc, headingXPath)
	if err != nil {
		return candidates{}, fmt.Errorf("invalid xpath %q: %w", headingXPath, err)
	}

	var c candidates
	for _, n := range anchors {
		c.Links = append(c.Links, link{
			Href: htmlquery.SelectAttr(n, "href"),
			Text: htmlquery.InnerText(n),
		})
	}
	for _, n := range headings {
		c.Headings = append(c.Headings, htmlquery.InnerText(n))
	}

	return c, nil
}
