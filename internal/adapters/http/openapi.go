package httpadapter

import (
	"errors"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"

	"isogen/api"
)

var (
	specRouterOnce sync.Once
	specRouter     routers.Router
	specRouterErr  error
)

func loadSpecRouter() (routers.Router, error) {
	specRouterOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(api.Spec)
		if err != nil {
			specRouterErr = err
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			specRouterErr = err
			return
		}
		specRouter, specRouterErr = legacyrouter.NewRouter(doc)
	})
	return specRouter, specRouterErr
}

// openAPIValidationMiddleware rejects requests that do not match the
// embedded contract before they reach auth or the handlers.
func openAPIValidationMiddleware(next http.Handler) http.Handler {
	router, err := loadSpecRouter()
	if err != nil {
		// A broken contract is a build defect; fail every request loudly.
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "api contract failed to load: " + err.Error()})
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := router.FindRoute(r)
		if err != nil {
			switch {
			case errors.Is(err, routers.ErrMethodNotAllowed):
				writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			default:
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown route"})
			}
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		next.ServeHTTP(w, r)
	})
}
