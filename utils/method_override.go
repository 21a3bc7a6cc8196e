package utils

import (
	"net/http"
	"strings"
)

const MethodOverrideParam = "_method"

// MethodOverride lets HTML forms send PATCH, PUT and DELETE as a POST carrying
// a _method query or form parameter. It has to wrap the whole router because
// gin picks the route before any middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(MethodOverrideParam)
			if method == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				method = r.PostFormValue(MethodOverrideParam)
			}
			switch method = strings.ToUpper(method); method {
			case http.MethodPatch, http.MethodPut, http.MethodDelete:
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
