package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"finitefield.org/mindcard/internal/card"
	"finitefield.org/mindcard/internal/httpx"
	"finitefield.org/mindcard/internal/middleware"
	"finitefield.org/mindcard/internal/observability"
)

const defaultMaxPayloadBytes = 1 << 20

// CardHandlers exposes skin listing and card rendering.
type CardHandlers struct {
	renderer        *card.Renderer
	defaultTemplate card.Template
	maxPayloadBytes int64
}

// CardOption customises construction of CardHandlers.
type CardOption func(*CardHandlers)

// WithCardRenderer injects the renderer. Its locale is the fallback when
// the request carries none.
func WithCardRenderer(r *card.Renderer) CardOption {
	return func(h *CardHandlers) {
		if r != nil {
			h.renderer = r
		}
	}
}

// WithCardDefaultTemplate sets the skin used when neither query nor body names one.
func WithCardDefaultTemplate(t card.Template) CardOption {
	return func(h *CardHandlers) {
		if t != "" {
			h.defaultTemplate = t
		}
	}
}

// WithCardMaxPayloadBytes caps the request body size.
func WithCardMaxPayloadBytes(n int64) CardOption {
	return func(h *CardHandlers) {
		if n > 0 {
			h.maxPayloadBytes = n
		}
	}
}

// NewCardHandlers constructs the card endpoints.
func NewCardHandlers(opts ...CardOption) *CardHandlers {
	h := &CardHandlers{
		renderer:        card.New(),
		defaultTemplate: card.TemplateBasic,
		maxPayloadBytes: defaultMaxPayloadBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the card endpoints.
func (h *CardHandlers) Routes(r chi.Router) {
	r.Get("/templates", h.listTemplates)
	r.Post("/cards/render", h.renderCard)
}

type templateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type templateListResponse struct {
	Templates []templateSummary `json:"templates"`
}

func (h *CardHandlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	skins := card.Skins()
	resp := templateListResponse{Templates: make([]templateSummary, 0, len(skins))}
	for _, s := range skins {
		resp.Templates = append(resp.Templates, templateSummary{
			ID:          string(s.ID),
			Name:        s.Name,
			Description: s.Description,
		})
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *CardHandlers) renderCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", fmt.Sprintf("payload exceeds %d bytes", h.maxPayloadBytes), http.StatusRequestEntityTooLarge))
			return
		}
		httpx.WriteError(ctx, w, httpx.NewError("invalid_payload", "unable to read request body", http.StatusBadRequest))
		return
	}

	payload, err := card.DecodePayload(body, card.FormatFromContentType(r.Header.Get("Content-Type")))
	if err != nil {
		logger.Debug("card payload rejected", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.NewError("invalid_payload", err.Error(), http.StatusBadRequest))
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("template"))
	if raw == "" {
		raw = payload.Template
	}
	tmpl := h.defaultTemplate
	if strings.TrimSpace(raw) != "" {
		tmpl, err = card.ParseTemplate(raw)
		if err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_template", err.Error(), http.StatusBadRequest).
				With("template", raw))
			return
		}
	}

	renderer := h.renderer
	if lang := middleware.Lang(ctx); lang != "" {
		renderer = renderer.ForLocale(lang)
	}

	out, err := renderer.Render(payload.Content, tmpl)
	if err != nil {
		if errors.Is(err, card.ErrInvalidTemplate) {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_template", err.Error(), http.StatusBadRequest))
			return
		}
		logger.Error("render card failed", zap.Error(err), zap.String("template", string(tmpl)))
		httpx.WriteError(ctx, w, httpx.NewError("render_failed", "unable to render card", http.StatusInternalServerError))
		return
	}

	logger.Info("card rendered",
		zap.String("template", string(tmpl)),
		zap.String("layout", card.SelectLayout(payload.Content).String()),
		zap.String("lang", renderer.Locale()),
		zap.Int("bytes", len(out)),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if wantsDownload(r.URL.Query().Get("download")) {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "card-"+string(tmpl)+".html"))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

func wantsDownload(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
