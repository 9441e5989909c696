package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/reeldesigner/pkg/buildinfo"
	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/pipeline"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// validateResponse is the body of POST /api/v1/validate and of 422
// responses.
type validateResponse struct {
	Valid      bool             `json:"valid"`
	Violations []reel.Violation `json:"violations"`
}

type errorResponse struct {
	Code      errors.Code `json:"code"`
	Error     string      `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.defaults)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	d := s.defaults
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "decode record: %v", err))
		return
	}

	res := s.runner.Validate(r.Context(), d)
	writeJSON(w, http.StatusOK, newValidateResponse(res))
}

// handleSVG renders one view from query parameters layered over the
// defaults.
func (s *Server) handleSVG(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := overlay(s.defaults, r.URL.Query())
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}

		opts := s.opts
		opts.View = view
		if v := r.URL.Query().Get("drumRing"); v != "" {
			on, err := strconv.ParseBool(v)
			if err != nil {
				s.writeError(w, r, http.StatusBadRequest, &errors.FieldError{Field: "drumRing", Message: "must be true or false"})
				return
			}
			opts.NoDrumRing = !on
		}

		result, err := s.runner.Execute(r.Context(), d, opts)
		switch {
		case errors.Is(err, errors.ErrCodeInvalidDimensions):
			writeJSON(w, http.StatusUnprocessableEntity, newValidateResponse(result.Validation))
			return
		case err != nil:
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}

		svg := result.Side
		if view == pipeline.ViewFront {
			svg = result.Front
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	}
}

// overlay copies d and replaces every dimension named in q. Unknown
// parameters are ignored; unparsable numbers are errors.
func overlay(d reel.Dimensions, q url.Values) (reel.Dimensions, error) {
	for _, spec := range reel.Fields() {
		raw := strings.TrimSpace(q.Get(spec.Name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return d, &errors.FieldError{Field: spec.Name, Message: "must be a number"}
		}
		_ = d.Set(spec.Name, v)
	}
	return d, nil
}

func newValidateResponse(res reel.Result) validateResponse {
	violations := res.Violations
	if violations == nil {
		violations = []reel.Violation{}
	}
	return validateResponse{Valid: res.OK(), Violations: violations}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.GetCode(err)
	var fe *errors.FieldError
	if stderrors.As(err, &fe) {
		code = fe.Code()
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", RequestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Code:      code,
		Error:     errors.UserMessage(err),
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
