// Package http provides http transport for jejenorm
package http

import (
	stdhttp "net/http"

	"jejenorm/internal/modkit/httpkit"
	"jejenorm/internal/platform/logger"
	pstrings "jejenorm/internal/platform/strings"
	"jejenorm/internal/services/api/jejenorm/domain"
)

// Register mounts the jejenorm endpoints. Successful payloads are written bare, errors use the envelope
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetJSON(r, "/", h.banner)
	httpkit.PostJSON(r, "/normalize", h.normalize)
	httpkit.PostJSON(r, "/normalize/batch", h.normalizeBatch)
	httpkit.GetJSON(r, "/rules/stats", h.stats)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) banner(_ *stdhttp.Request) (any, error) {
	return httpkit.Bare(domain.BannerResp{Message: domain.Banner}), nil
}

// normalize rewrites one text and classifies it
func (h *handlers) normalize(r *stdhttp.Request, in domain.NormalizeInput) (any, error) {
	out, err := h.svc.Normalize(r.Context(), in)
	if err != nil {
		return nil, err
	}
	logger.C(r.Context()).Debug().
		Str("text", pstrings.Truncate(pstrings.Deref(in.Text), 64)).
		Str("normalized", pstrings.Truncate(out.Normalized, 64)).
		Str("sentiment", string(out.Sentiment)).
		Msg("normalized")
	return httpkit.Bare(out), nil
}

func (h *handlers) normalizeBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	out, err := h.svc.NormalizeBatch(r.Context(), in)
	if err != nil {
		return nil, err
	}
	logger.C(r.Context()).Debug().Int("texts", len(in.Texts)).Msg("normalized batch")
	return httpkit.Bare(out), nil
}

func (h *handlers) stats(_ *stdhttp.Request) (any, error) {
	return httpkit.Bare(h.svc.Stats()), nil
}
