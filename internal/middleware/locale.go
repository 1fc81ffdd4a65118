package middleware

import (
	"net/http"
	"strings"

	"finitefield.org/mindcard/internal/i18n"
)

const langCookie = "hl"

// Locale resolves the card language for the request: the hl query
// parameter, then the hl cookie, then Accept-Language, then def. An explicit
// hl query is remembered in the cookie.
func Locale(bundle *i18n.Bundle, def string) func(http.Handler) http.Handler {
	if bundle == nil {
		bundle = i18n.Default()
	}
	def = bundle.Normalize(def)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := def
			if q := strings.TrimSpace(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
				lang = bundle.Normalize(q)
				http.SetCookie(w, &http.Cookie{Name: langCookie, Value: lang, Path: "/", SameSite: http.SameSiteLaxMode})
			} else if c, err := r.Cookie(langCookie); err == nil && bundle.IsSupported(c.Value) {
				lang = bundle.Normalize(c.Value)
			} else if matched, ok := bundle.Match(r.Header.Get("Accept-Language")); ok {
				lang = matched
			}

			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}
