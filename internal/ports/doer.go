package ports

import "net/http"

// Doer is the slice of *http.Client the API adapter needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
