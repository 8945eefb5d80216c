package export

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// cssBackend walks the document with goquery selectors
type cssBackend struct{}

func (cssBackend) Name() string { return "css" }

func (cssBackend) collect(r io.Reader) (candidates, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return candidates{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var c candidates
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		c.Links = append(c.Links, link{
			Href: s.AttrOr("href", ""),
			Text: s.Text(),
		})
	})
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		c.Headings = append(c.Headings, s.Text())
	})

	return c, nil
}
