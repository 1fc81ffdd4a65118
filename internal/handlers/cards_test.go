package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finitefield.org/mindcard/internal/card"
	"finitefield.org/mindcard/internal/i18n"
	"finitefield.org/mindcard/internal/middleware"
	"finitefield.org/mindcard/internal/testutil"
)

func newTestRouter(t *testing.T, opts ...CardOption) http.Handler {
	t.Helper()
	renderer := card.New(
		card.WithClock(func() time.Time { return time.Date(2025, time.March, 9, 8, 5, 0, 0, time.UTC) }),
		card.WithLocation(time.UTC),
		card.WithLocale("zh"),
	)
	cards := NewCardHandlers(append([]CardOption{WithCardRenderer(renderer)}, opts...)...)
	return NewRouter(
		WithMiddlewares(middleware.Locale(i18n.Default(), "zh")),
		WithCardRoutes(cards.Routes),
	)
}

func doRequest(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestListTemplates(t *testing.T) {
	t.Parallel()

	rr := doRequest(t, newTestRouter(t), http.MethodGet, "/templates", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp templateListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	ids := make([]string, 0, len(resp.Templates))
	for _, tmpl := range resp.Templates {
		require.NotEmpty(t, tmpl.Name)
		ids = append(ids, tmpl.ID)
	}
	require.Equal(t, []string{"basic", "starry", "ocean", "ancient", "sci-fi", "candy"}, ids)
}

func TestRenderCardJSON(t *testing.T) {
	t.Parallel()

	body := `{"theme":"夜里的星","emotion_echo":"你辛苦了","suggestion":["  ","Breathe deeply",""]}`
	rr := doRequest(t, newTestRouter(t), http.MethodPost, "/cards/render?template=Starry", "application/json", body)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	require.Empty(t, rr.Header().Get("Content-Disposition"))

	doc := testutil.ParseHTML(t, rr.Body.String())
	require.Equal(t, "starry", doc.Find(".card-wrapper").AttrOr("data-template", ""))
	require.Equal(t, []string{"echo", "suggestion"}, testutil.SectionKeys(doc))
	require.Equal(t, 1, doc.Find(".card-list li").Length())
	require.Equal(t, "夜里的星", doc.Find("title").Text())
}

func TestRenderCardYAMLEnvelope(t *testing.T) {
	t.Parallel()

	body := "template: ocean\ncard:\n  step2_breakdown: |\n    - one\n    - two\n  step5_summary: 慢慢来\n"
	rr := doRequest(t, newTestRouter(t), http.MethodPost, "/cards/render", "application/yaml", body)

	require.Equal(t, http.StatusOK, rr.Code)
	doc := testutil.ParseHTML(t, rr.Body.String())
	require.Equal(t, "ocean", doc.Find(".card-wrapper").AttrOr("data-template", ""))
	require.Equal(t, "five-step", doc.Find(".card-wrapper").AttrOr("data-layout", ""))
	require.Equal(t, []string{"breakdown", "summary"}, testutil.SectionKeys(doc))
}

func TestRenderCardQueryTemplateWinsOverEnvelope(t *testing.T) {
	t.Parallel()

	body := `{"template":"candy","card":{"emotion_echo":"hi"}}`
	rr := doRequest(t, newTestRouter(t), http.MethodPost, "/cards/render?template=ancient", "application/json", body)

	require.Equal(t, http.StatusOK, rr.Code)
	doc := testutil.ParseHTML(t, rr.Body.String())
	require.Equal(t, "ancient", doc.Find(".card-wrapper").AttrOr("data-template", ""))
}

func TestRenderCardDefaultTemplateFromConfig(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, WithCardDefaultTemplate(card.TemplateSciFi))
	rr := doRequest(t, h, http.MethodPost, "/cards/render", "application/json", `{"emotion_echo":"hi"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	doc := testutil.ParseHTML(t, rr.Body.String())
	require.Equal(t, "sci-fi", doc.Find(".card-wrapper").AttrOr("data-template", ""))
}

func TestRenderCardDownload(t *testing.T) {
	t.Parallel()

	rr := doRequest(t, newTestRouter(t), http.MethodPost, "/cards/render?template=candy&download=1", "application/json", `{"emotion_echo":"hi"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, `attachment; filename="card-candy.html"`, rr.Header().Get("Content-Disposition"))
}

func TestRenderCardLocale(t *testing.T) {
	t.Parallel()

	rr := doRequest(t, newTestRouter(t), http.MethodPost, "/cards/render?hl=en", "application/json", `{"emotion_echo":"hi"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "en", rr.Header().Get("Content-Language"))
	doc := testutil.ParseHTML(t, rr.Body.String())
	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Contains(t, doc.Find(".card-date").Text(), "March 9, 2025")
}

func TestRenderCardErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		status      int
		code        string
	}{
		{name: "unknown template", target: "/cards/render?template=neon", contentType: "application/json", body: `{"emotion_echo":"hi"}`, status: http.StatusBadRequest, code: "invalid_template"},
		{name: "unknown envelope template", target: "/cards/render", contentType: "application/json", body: `{"template":"neon","card":{}}`, status: http.StatusBadRequest, code: "invalid_template"},
		{name: "empty body", target: "/cards/render", contentType: "application/json", body: "", status: http.StatusBadRequest, code: "invalid_payload"},
		{name: "malformed json", target: "/cards/render", contentType: "application/json", body: `{"theme":`, status: http.StatusBadRequest, code: "invalid_payload"},
		{name: "wrong text shape", target: "/cards/render", contentType: "application/json", body: `{"suggestion":42}`, status: http.StatusBadRequest, code: "invalid_payload"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := doRequest(t, newTestRouter(t), http.MethodPost, tc.target, tc.contentType, tc.body)
			require.Equal(t, tc.status, rr.Code)
			require.Equal(t, tc.code, decodeError(t, rr)["error"])
		})
	}
}

func TestRenderCardPayloadTooLarge(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, WithCardMaxPayloadBytes(64))
	body := `{"emotion_echo":"` + strings.Repeat("a", 128) + `"}`
	rr := doRequest(t, h, http.MethodPost, "/cards/render", "application/json", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	require.Equal(t, "payload_too_large", decodeError(t, rr)["error"])
}

func TestRouterNotFoundAndMethod(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	rr := doRequest(t, h, http.MethodGet, "/nope", "", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "route_not_found", decodeError(t, rr)["error"])

	rr = doRequest(t, h, http.MethodGet, "/cards/render", "", "")
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
