package splist

import "net/http"

// Doer executes a single HTTP round trip. *http.Client satisfies it
// directly; spauth.Transport adapts an authenticated gosip client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
