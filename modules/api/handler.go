package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/refcode/pkg/logger"
	"github.com/dmitrymomot/refcode/pkg/reference"
)

const maxValidateBody = 64 << 10

type handler struct {
	opts RouterOptions
}

type generateResponse struct {
	Kind       reference.Kind `json:"kind"`
	References []string       `json:"references"`
}

type guidResponse struct {
	GUID string `json:"guid"`
}

type validateRequest struct {
	Kind      reference.Kind `json:"kind"`
	Reference string         `json:"reference"`
	Length    int            `json:"length"`
	Prefix    string         `json:"prefix"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.opts.Logger

	kind, err := reference.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	q := r.URL.Query()
	var length int
	if kind != reference.GUID {
		if length, err = intParam(q.Get("length"), h.opts.DefaultLength); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	count, err := intParam(q.Get("count"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if length > h.opts.MaxLength {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: length %d > %d", ErrLimitExceeded, length, h.opts.MaxLength))
		return
	}
	if count < 1 || count > h.opts.MaxCount {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: count must be between 1 and %d", ErrLimitExceeded, h.opts.MaxCount))
		return
	}

	prefix := q.Get("prefix")
	refs := make([]string, 0, count)
	for range count {
		ref, err := h.opts.Generator.Generate(kind, length, prefix)
		if err != nil {
			log.WarnContext(ctx, "reference generation rejected", logger.Kind(kind), logger.Length(length), logger.Error(err))
			writeError(w, statusFor(err), err)
			return
		}
		refs = append(refs, ref)
	}

	log.DebugContext(ctx, "references generated", logger.Kind(kind), logger.Length(length), logger.Count(count))
	writeJSON(w, http.StatusOK, generateResponse{Kind: kind, References: refs})
}

func (h *handler) guid(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, guidResponse{GUID: h.opts.Generator.GUID()})
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req validateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxValidateBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Join(ErrInvalidPayload, err))
		return
	}
	if !req.Kind.Valid() {
		writeError(w, http.StatusBadRequest, errors.Join(ErrInvalidPayload, reference.ErrUnknownKind))
		return
	}

	err := reference.Validate(req.Kind, req.Reference, req.Length, req.Prefix)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, validateResponse{Valid: true})
	case errors.Is(err, reference.ErrInvalidReference):
		h.opts.Logger.DebugContext(ctx, "reference rejected", logger.Kind(req.Kind), logger.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, validateResponse{Valid: false, Error: err.Error()})
	default:
		writeError(w, statusFor(err), err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, reference.ErrInvalidLength),
		errors.Is(err, reference.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, reference.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidQuery, raw)
	}
	return n, nil
}
