// Package transport exposes the codec over HTTP.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/codec"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 8 << 20

type hexRequest struct {
	Hex string `json:"hex"`
}

type batchRequest struct {
	Items []string `json:"items"`
}

type decodeResponse struct {
	model.Transaction
	Text string `json:"text,omitempty"`
}

type encodeResponse struct {
	Hex  string `json:"hex"`
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

type errorResponse struct {
	Error string          `json:"error"`
	Kind  codec.ErrorKind `json:"kind,omitempty"`
}

// CodecHandler serves the transaction codec endpoints.
type CodecHandler struct {
	svc          TransactionService
	metrics      RequestMetrics
	limiter      ratelimit.Limiter
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewCodecHandler returns a CodecHandler instance. A nil limiter disables throttling.
func NewCodecHandler(svc TransactionService, metrics RequestMetrics, limiter ratelimit.Limiter, logger *zap.Logger, maxBodyBytes int64) *CodecHandler {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &CodecHandler{
		svc:          svc,
		metrics:      metrics,
		limiter:      limiter,
		logger:       logger.Named("http"),
		maxBodyBytes: maxBodyBytes,
	}
}

// Register mounts the handler routes on mux.
func (h *CodecHandler) Register(mux *http.ServeMux) {
	h.route(mux, "GET /v1/health", h.health)
	h.route(mux, "POST /v1/transactions/decode", h.decode)
	h.route(mux, "POST /v1/transactions/decode-batch", h.decodeBatch)
	h.route(mux, "POST /v1/transactions/encode", h.encode)
	h.route(mux, "POST /v1/compactsize/decode", h.decodeCompactSize)
}

func (h *CodecHandler) route(mux *http.ServeMux, pattern string, fn func(http.ResponseWriter, *http.Request) int) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		h.limiter.Take()
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		code := fn(w, r)
		h.metrics.ObserveRequest(pattern, code, started)
	})
}

func (h *CodecHandler) health(w http.ResponseWriter, _ *http.Request) int {
	return h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CodecHandler) decode(w http.ResponseWriter, r *http.Request) int {
	var req hexRequest
	if code, ok := h.readJSON(w, r, &req); !ok {
		return code
	}

	tx, err := h.svc.DecodeHex(r.Context(), req.Hex)
	if err != nil {
		return h.writeError(w, err)
	}
	resp := decodeResponse{Transaction: tx}
	if r.URL.Query().Get("render") == "1" {
		raw, err := service.ParseHex(req.Hex)
		if err != nil {
			return h.writeError(w, err)
		}
		if resp.Text, err = h.svc.Render(r.Context(), raw); err != nil {
			return h.writeError(w, err)
		}
	}
	return h.writeJSON(w, http.StatusOK, resp)
}

func (h *CodecHandler) decodeBatch(w http.ResponseWriter, r *http.Request) int {
	var req batchRequest
	if code, ok := h.readJSON(w, r, &req); !ok {
		return code
	}

	results, err := h.svc.DecodeBatch(r.Context(), req.Items)
	if err != nil {
		return h.writeError(w, err)
	}
	return h.writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *CodecHandler) encode(w http.ResponseWriter, r *http.Request) int {
	var req model.Transaction
	if code, ok := h.readJSON(w, r, &req); !ok {
		return code
	}

	raw, err := h.svc.Encode(r.Context(), req)
	if err != nil {
		return h.writeError(w, err)
	}
	return h.writeJSON(w, http.StatusOK, encodeResponse{
		Hex:  hex.EncodeToString(raw),
		Hash: chainhash.DoubleHashH(raw).String(),
		Size: len(raw),
	})
}

func (h *CodecHandler) decodeCompactSize(w http.ResponseWriter, r *http.Request) int {
	var req hexRequest
	if code, ok := h.readJSON(w, r, &req); !ok {
		return code
	}

	cs, err := h.svc.DecodeCompactSize(r.Context(), req.Hex)
	if err != nil {
		return h.writeError(w, err)
	}
	return h.writeJSON(w, http.StatusOK, cs)
}

func (h *CodecHandler) readJSON(w http.ResponseWriter, r *http.Request, dst any) (int, bool) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()}), false
		}
		return h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()}), false
	}
	return 0, true
}

func (h *CodecHandler) writeError(w http.ResponseWriter, err error) int {
	if kind, ok := codec.KindOf(err); ok {
		return h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kind})
	}
	h.logger.Error("request failed", zap.Error(err))
	return h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (h *CodecHandler) writeJSON(w http.ResponseWriter, code int, body any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
	return code
}
