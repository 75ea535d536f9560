package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	// Headers are applied by the route adapter; Content-Type defaults to
	// application/json when unset.
	Headers http.Header
}

type ErrorResponse struct {
	Error string `json:"error"`
}
