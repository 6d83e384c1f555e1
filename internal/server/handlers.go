// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/copy-engine/internal/social"
	"github.com/pdiddy/copy-engine/internal/tone"
	"github.com/pdiddy/copy-engine/internal/validate"
	"github.com/pdiddy/copy-engine/pkg/types"
)

// internalMessage is the only detail a client sees for a generator failure.
const internalMessage = "Failed to generate content"

type handlers struct {
	log          *zap.Logger
	gen          Generator
	maxBodyBytes int64
}

type generateResponse struct {
	Result any `json:"result"`
}

// generate validates the envelope in the request body and returns the
// generated copy.
func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge,
				types.NewError(types.ErrMalformed, "", "request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		respondError(w, http.StatusBadRequest, types.NewError(types.ErrMalformed, "", "reading request body: %v", err))
		return
	}

	env, err := validate.Decode(body)
	if err != nil {
		h.reject(w, r, err)
		return
	}
	req, err := validate.Envelope(env)
	if err != nil {
		h.reject(w, r, err)
		return
	}

	res, err := h.gen.Generate(req)
	if err != nil {
		h.log.Error("generation failed",
			zap.String("kind", string(req.Kind)),
			zap.String("request_id", requestID(r)),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, &types.Error{Kind: types.ErrInternal, Message: internalMessage})
		return
	}

	h.log.Debug("generated", zap.String("kind", string(res.Kind)), zap.String("request_id", requestID(r)))
	respondJSON(w, http.StatusOK, generateResponse{Result: res.Value()})
}

// reject answers a validation failure. An unsupported tone is well-formed
// input the service cannot serve, so it gets 422; every other rejection is
// a 400.
func (h *handlers) reject(w http.ResponseWriter, r *http.Request, err error) {
	var verr *types.Error
	if !errors.As(err, &verr) {
		verr = types.NewError(types.ErrMalformed, "", "%v", err)
	}
	status := http.StatusBadRequest
	if verr.Kind == types.ErrUnsupportedTone {
		status = http.StatusUnprocessableEntity
	}
	h.log.Debug("request rejected",
		zap.String("kind", string(verr.Kind)),
		zap.String("field", verr.Field),
		zap.String("request_id", requestID(r)))
	respondError(w, status, verr)
}

type toneInfo struct {
	ID     types.Tone `json:"id"`
	Label  string     `json:"label"`
	Helper string     `json:"helper"`
}

// tones lists the tone palette in display order.
func (h *handlers) tones(w http.ResponseWriter, r *http.Request) {
	banks := tone.All()
	out := make([]toneInfo, len(banks))
	for i, b := range banks {
		out[i] = toneInfo{ID: b.Tone, Label: b.Label, Helper: b.Helper}
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *handlers) platforms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, social.Platforms())
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, err *types.Error) {
	respondJSON(w, status, err)
}
