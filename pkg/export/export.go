package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"igunfollow/pkg/compare"
	"igunfollow/pkg/errors"
)

// backend turns a decoded HTML document into raw candidates
type backend interface {
	Name() string
	collect(r io.Reader) (candidates, error)
}

// Parser extracts usernames from export files
type Parser struct {
	backend backend
}

// NewParser creates a Parser for the named backend, "css" or "xpath"
func NewParser(kind string) (*Parser, error) {
	switch strings.ToLower(kind) {
	case "", "css":
		return &Parser{backend: cssBackend{}}, nil
	case "xpath":
		return &Parser{backend: xpathBackend{}}, nil
	default:
		return nil, fmt.Errorf("unknown parser %q", kind)
	}
}

// Name returns the backend name
func (p *Parser) Name() string {
	return p.backend.Name()
}

// Extract reads an HTML document and returns the usernames it lists.
// Documents that are not valid UTF-8 are decoded from the charset they
// declare, falling back to windows-1252.
func (p *Parser) Extract(r io.Reader) (compare.Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read HTML: %w", err)
	}

	var doc io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		enc, _, _ := charset.DetermineEncoding(data, "text/html")
		doc = enc.NewDecoder().Reader(doc)
	}

	c, err := p.backend.collect(doc)
	if err != nil {
		return nil, err
	}
	return c.usernames(), nil
}

// ExtractFile extracts the usernames of one export file. A missing file is a
// not_found error naming the path.
func (p *Parser) ExtractFile(path string) (compare.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(path, err)
	}
	defer f.Close()

	set, err := p.Extract(f)
	if err != nil {
		return nil, errors.Parsing(path, err)
	}
	return set, nil
}

// ExtractFiles unions the usernames of several export files. Instagram splits
// long follower lists over followers_1.html, followers_2.html and so on.
func (p *Parser) ExtractFiles(paths ...string) (compare.Set, error) {
	all := compare.NewSet()
	for _, path := range paths {
		set, err := p.ExtractFile(path)
		if err != nil {
			return nil, err
		}
		all.Union(set)
	}
	return all, nil
}

// ExtractFile extracts usernames from path with the default CSS backend
func ExtractFile(path string) (compare.Set, error) {
	p, _ := NewParser("css")
	return p.ExtractFile(path)
}
