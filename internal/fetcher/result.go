package fetcher

// Response is the outcome of a page download. OK mirrors the HTTP success
// range; Body is the raw page content and is only meaningful when OK is
// true.
type Response struct {
	OK         bool
	StatusCode int
	Body       string
}
