package docquiz

import "context"

// Fetcher retrieves the markup of a documentation page.
type Fetcher interface {
	// Fetch returns the page markup as UTF-8 text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
