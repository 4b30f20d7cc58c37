package handler

import (
	"bytes"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"final-pay-engine/internal/engine"
	"final-pay-engine/internal/model"
)

const (
	pathResolve       = "/v1/final-pay"
	pathScenarios     = "/v1/final-pay/scenarios"
	pathJurisdictions = "/v1/jurisdictions"
	pathHealth        = "/healthz"
)

type Handler struct {
	resolver *engine.Resolver
	logger   *slog.Logger
}

func New(resolver *engine.Resolver, logger *slog.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case pathResolve:
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleResolve(ctx)
		}
	case pathScenarios:
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleScenarios(ctx)
		}
	case pathJurisdictions:
		if requireMethod(ctx, fasthttp.MethodGet) {
			h.handleJurisdictions(ctx)
		}
	case pathHealth:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.logger.Info("request",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (h *Handler) handleResolve(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.resolver.Process(&req))
}

func (h *Handler) handleScenarios(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.resolver.Scenarios(&req))
}

func (h *Handler) handleJurisdictions(ctx *fasthttp.RequestCtx) {
	js := h.resolver.Rules().Jurisdictions()
	out := make([]model.JurisdictionInfo, 0, len(js))
	for _, j := range js {
		out = append(out, j.Info())
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

// decodeRequest accepts a JSON body or a urlencoded form. It writes the
// error response itself and reports false when the body is unusable.
func decodeRequest(ctx *fasthttp.RequestCtx) (model.ResolveRequest, bool) {
	var req model.ResolveRequest

	if bytes.HasPrefix(ctx.Request.Header.ContentType(), []byte("application/x-www-form-urlencoded")) {
		args := ctx.PostArgs()
		req.Jurisdiction = string(args.Peek("jurisdiction"))
		req.SeparationReason = string(args.Peek("separation_reason"))
		req.LastDayWorked = string(args.Peek("last_day_worked"))
		req.PayFrequency = string(args.Peek("pay_frequency"))
		req.Today = string(args.Peek("today"))
		return req, true
	}

	body := ctx.PostBody()
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "Request body is required")
		return req, false
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	return req, true
}

func requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) != method {
		ctx.Response.Header.Set("Allow", method)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"encoding response"}`, fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
