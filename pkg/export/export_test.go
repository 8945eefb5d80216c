package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igunfollow/pkg/errors"
)

var parsers = []string{"css", "xpath"}

func newParser(t *testing.T, kind string) *Parser {
	t.Helper()
	p, err := NewParser(kind)
	require.NoError(t, err)
	return p
}

func TestNewParser(t *testing.T) {
	p, err := NewParser("")
	require.NoError(t, err)
	assert.Equal(t, "css", p.Name())

	p, err = NewParser("XPath")
	require.NoError(t, err)
	assert.Equal(t, "xpath", p.Name())

	_, err = NewParser("regex")
	assert.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	for _, kind := range parsers {
		t.Run(kind, func(t *testing.T) {
			p := newParser(t, kind)

			following, err := p.ExtractFile(filepath.Join("testdata", "following.html"))
			require.NoError(t, err)
			assert.Equal(t, []string{"alice", "bob.builds", "carol_99", "dave"}, following.Sorted())

			followers, err := p.ExtractFile(filepath.Join("testdata", "followers_1.html"))
			require.NoError(t, err)
			assert.Equal(t, []string{"bob.builds", "erin"}, followers.Sorted())
		})
	}
}

func TestExtractFiles(t *testing.T) {
	p := newParser(t, "css")

	followers, err := p.ExtractFiles(
		filepath.Join("testdata", "followers_1.html"),
		filepath.Join("testdata", "followers_2.html"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob.builds", "carol_99", "erin"}, followers.Sorted())
}

func TestExtractFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "followers_1.html")

	_, err := ExtractFile(missing)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), missing)

	p := newParser(t, "css")
	_, err = p.ExtractFiles(filepath.Join("testdata", "followers_1.html"), missing)
	assert.True(t, errors.IsNotFound(err))
}

func TestExtractRules(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "profile href wins over text",
			html: `<a href="https://www.instagram.com/_u/real">display</a>`,
			want: []string{"real"},
		},
		{
			name: "profile href with trailing slash and query",
			html: `<a href="https://instagram.com/_u/x_y/?igsh=abc">x</a><a href="https://instagram.com/_u/z#top">z</a>`,
			want: []string{"x_y", "z"},
		},
		{
			name: "empty profile suffix is skipped",
			html: `<a href="https://www.instagram.com/_u/">nobody</a>`,
			want: []string{},
		},
		{
			name: "instagram link text",
			html: `<a href="https://www.instagram.com/someone">  someone  </a>`,
			want: []string{"someone"},
		},
		{
			name: "url link text is skipped",
			html: `<a href="https://www.instagram.com/someone">https://www.instagram.com/someone</a>`,
			want: []string{},
		},
		{
			name: "usernames starting with http",
			html: `<h2>httpster</h2><a href="https://www.instagram.com/httpcat">httpcat</a><a href="https://www.instagram.com/https.daily">https.daily</a>`,
			want: []string{"httpcat", "https.daily", "httpster"},
		},
		{
			name: "text with any url scheme is skipped",
			html: `<h2>ftp://files</h2><a href="https://www.instagram.com/x">HTTPS://WWW.INSTAGRAM.COM/x</a>`,
			want: []string{},
		},
		{
			name: "links elsewhere are ignored",
			html: `<a href="https://example.com/u">u</a><a href="#">top</a><a>no href</a>`,
			want: []string{},
		},
		{
			name: "headings",
			html: `<h2> heading_user </h2><h2></h2><h2>http://nope</h2><h1>Followers</h1>`,
			want: []string{"heading_user"},
		},
		{
			name: "duplicates collapse",
			html: `<h2>dup</h2><a href="https://www.instagram.com/_u/dup">dup</a><a href="https://www.instagram.com/dup">dup</a>`,
			want: []string{"dup"},
		},
		{
			name: "case is preserved",
			html: `<h2>Mixed.Case</h2><h2>mixed.case</h2>`,
			want: []string{"Mixed.Case", "mixed.case"},
		},
		{
			name: "malformed markup",
			html: `<h2>first</h3><ul><li><a href="https://www.instagram.com/second">second</li><li><h2>third</ul>`,
			want: []string{"first", "second", "third"},
		},
		{
			name: "empty document",
			html: ``,
			want: []string{},
		},
	}

	for _, tt := range tests {
		for _, kind := range parsers {
			t.Run(tt.name+"/"+kind, func(t *testing.T) {
				set, err := newParser(t, kind).Extract(strings.NewReader(tt.html))
				require.NoError(t, err)
				assert.Equal(t, tt.want, set.Sorted())
			})
		}
	}
}

func TestExtractDecodesDeclaredCharset(t *testing.T) {
	// "josé" in ISO-8859-1: é is the single byte 0xE9
	doc := "<html><head><meta charset=\"iso-8859-1\"></head><body><h2>jos\xe9</h2></body></html>"

	for _, kind := range parsers {
		t.Run(kind, func(t *testing.T) {
			set, err := newParser(t, kind).Extract(strings.NewReader(doc))
			require.NoError(t, err)
			assert.Equal(t, []string{"josé"}, set.Sorted())
		})
	}
}

func TestExtractNormalizesText(t *testing.T) {
	// decomposed e + combining acute, plus a stray control character
	doc := "<h2>jose\u0301\u0007</h2>"

	set, err := newParser(t, "css").Extract(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, set.Has("jos\u00e9"))
}

func TestBackendsAgree(t *testing.T) {
	files := []string{"following.html", "followers_1.html", "followers_2.html"}

	for _, name := range files {
		path := filepath.Join("testdata", name)
		css, err := newParser(t, "css").ExtractFile(path)
		require.NoError(t, err)
		xpath, err := newParser(t, "xpath").ExtractFile(path)
		require.NoError(t, err)
		assert.Equal(t, css.Sorted(), xpath.Sorted(), name)
	}
}
