package fetchers

// Response define a fetched page
type Response struct {
	StatusCode int
	Body       string
}

// Fetcher define page fetcher, a non-success status is returned in Response, not as an error
type Fetcher interface {
	Fetch(url string) (*Response, error)
}
