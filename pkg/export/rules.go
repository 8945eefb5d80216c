package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"igunfollow/pkg/compare"
)

const (
	profileMarker = "_u/"
	instagramHost = "instagram.com/"
)

// link is an anchor found in the document
type link struct {
	Href string
	Text string
}

// candidates is what a backend pulls out of a document before the rules run
type candidates struct {
	Links    []link
	Headings []string
}

// usernames applies the extraction rules to the raw candidates
func (c candidates) usernames() compare.Set {
	set := compare.NewSet()

	for _, l := range c.Links {
		switch {
		case strings.Contains(l.Href, profileMarker):
			if u := usernameFromHref(l.Href); u != "" {
				set.Add(u)
			}
		case strings.Contains(l.Href, instagramHost):
			if u := cleanText(l.Text); isUsernameText(u) {
				set.Add(u)
			}
		}
	}

	for _, h := range c.Headings {
		if u := cleanText(h); isUsernameText(u) {
			set.Add(u)
		}
	}

	return set
}

// usernameFromHref returns what follows the last "_u/" in href, without any
// query, fragment or trailing slash
func usernameFromHref(href string) string {
	u := href[strings.LastIndex(href, profileMarker)+len(profileMarker):]
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return cleanText(strings.TrimRight(u, "/"))
}

// isUsernameText rejects empty text and text that is itself a URL.
// Usernames such as "httpster" are kept.
func isUsernameText(s string) bool {
	return s != "" && !strings.Contains(s, "://")
}

// cleanText strips control characters, normalizes to NFC and trims
func cleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(norm.NFC.String(s))
}
