package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LinkSelector implements docquiz.LinkSelector at compile time.
var _ docquiz.LinkSelector = (*goquery.LinkSelector)(nil)

const baseURL = "https://docs.python.org/3/library/"

func TestLinkSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts internal reference links from a sphinx index", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>The Python Standard Library</title></head>
<body>
<div class="toctree-wrapper compound">
	<ul>
		<li class="toctree-l1"><a class="reference internal" href="intro.html">Introduction</a></li>
		<li class="toctree-l1"><a class="reference internal" href="functions.html">Built-in Functions</a></li>
		<li class="toctree-l1"><a class="reference internal" href="json.html">json</a></li>
	</ul>
</div>
</body>
</html>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		assert.Equal(t, []string{
			baseURL + "intro.html",
			baseURL + "functions.html",
			baseURL + "json.html",
		}, links)
	})

	t.Run("ignores external and same-page anchors", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a class="reference external" href="https://peps.python.org/pep-0008/">PEP 8</a>
<a class="headerlink" href="#the-python-standard-library">¶</a>
<a href="other.html">No class</a>
<a class="reference internal" href="string.html">string</a>
</body>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		assert.Equal(t, []string{baseURL + "string.html"}, links)
	})

	t.Run("requires an exact class match", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a class="reference internal extra" href="a.html">A</a>
<a class="internal reference" href="b.html">B</a>
<a class="reference internal" href="c.html">C</a>
</body>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		assert.Equal(t, []string{baseURL + "c.html"}, links)
	})

	t.Run("keeps duplicates in document order", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a class="reference internal" href="os.html">os</a>
<a class="reference internal" href="sys.html">sys</a>
<a class="reference internal" href="os.html">os again</a>
</body>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		assert.Equal(t, []string{baseURL + "os.html", baseURL + "sys.html", baseURL + "os.html"}, links)
	})

	t.Run("concatenates href with base URL without resolving", func(t *testing.T) {
		t.Parallel()

		html := `<a class="reference internal" href="../reference/datamodel.html#objects">Objects</a>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, baseURL+"../reference/datamodel.html#objects", links[0])
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		html := `<a class="reference internal">No href</a><a class="reference internal" href="">Empty</a>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		assert.Equal(t, []string{baseURL}, links)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div><ul><li><a class="reference internal" href="re.html">re<li><a class="reference internal" href="csv.html"`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		assert.Contains(t, links, baseURL+"re.html")
	})

	t.Run("returns no links for pages without internal references", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks("<html><body><p>nothing here</p></body></html>", baseURL)

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("every link is prefixed with the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<a class="reference internal" href="x.html">x</a><a class="reference internal" href="y.html#z">y</a>`

		s := goquery.NewLinkSelector()
		links, err := s.ExtractLinks(html, baseURL)

		require.NoError(t, err)
		for _, link := range links {
			assert.True(t, strings.HasPrefix(link, baseURL))
		}
	})
}
