package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
)

type Controller interface {
	Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

// AdaptRoute turns a controller into an http.Handler.
func AdaptRoute(controller Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)
		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
