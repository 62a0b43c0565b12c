package docquiz

// InternalReferenceClass is the class attribute value that marks an anchor
// as a link to another page of the same documentation tree.
const InternalReferenceClass = "reference internal"

// LinkSelector extracts documentation page links from an index page.
type LinkSelector interface {
	// ExtractLinks returns the absolute URL of every internal reference
	// anchor in html, in document order, duplicates included.
	// Each URL is baseURL followed by the anchor's href.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
