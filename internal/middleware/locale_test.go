package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/mindcard/internal/i18n"
)

func serveLocale(t *testing.T, req *http.Request, def string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var got string
	h := Locale(i18n.Default(), def)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Lang(r.Context())
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr, got
}

func TestLocaleResolutionOrder(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		def    string
		want   string
	}{
		{name: "default", def: "zh", want: "zh"},
		{name: "configured default", def: "en", want: "en"},
		{name: "accept language", accept: "en-US,en;q=0.9", def: "zh", want: "en"},
		{name: "cookie beats header", cookie: "zh", accept: "en", def: "en", want: "zh"},
		{name: "query beats cookie", query: "EN", cookie: "zh", def: "zh", want: "en"},
		{name: "unsupported query ignored", query: "fr", def: "zh", want: "zh"},
		{name: "regional tag", query: "zh-TW", def: "en", want: "zh"},
		{name: "unsupported header keeps configured default", accept: "fr-FR", def: "en", want: "en"},
		{name: "wildcard header keeps configured default", accept: "*", def: "en", want: "en"},
		{name: "unsupported header with zh default", accept: "de", def: "zh", want: "zh"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := "/cards/render"
			if tc.query != "" {
				target += "?hl=" + tc.query
			}
			req := httptest.NewRequest(http.MethodPost, target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "hl", Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}

			rr, got := serveLocale(t, req, tc.def)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want, rr.Header().Get("Content-Language"))
		})
	}
}

func TestLocaleQueryPersistsCookie(t *testing.T) {
	rr, _ := serveLocale(t, httptest.NewRequest(http.MethodGet, "/templates?hl=en", nil), "zh")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "hl", cookies[0].Name)
	require.Equal(t, "en", cookies[0].Value)
}

func TestVaryLocale(t *testing.T) {
	rr := httptest.NewRecorder()
	VaryLocale(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.ElementsMatch(t, []string{"Accept-Language", "Cookie"}, rr.Header().Values("Vary"))
}
