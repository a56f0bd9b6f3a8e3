package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/model"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP statuses: missing entities to
// 404, invalid input and malformed snapshots to 400, everything else
// to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case stderrors.Is(err, model.ErrBlockNotFound),
		stderrors.Is(err, model.ErrPortNotFound),
		stderrors.Is(err, model.ErrConnectionNotFound),
		errors.Is(err, errors.ErrCodeNotFound),
		errors.Is(err, errors.ErrCodeSnapshotNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrCodeMalformedSnapshot),
		errors.Is(err, errors.ErrCodeInvalidInput),
		errors.Is(err, errors.ErrCodeInvalidKind),
		errors.Is(err, errors.ErrCodeInvalidSide),
		errors.Is(err, errors.ErrCodeInvalidName):
		status = http.StatusBadRequest
	}

	resp := errorResponse{Error: errors.UserMessage(err)}
	if code := errors.GetCode(err); code != "" {
		resp.Code = string(code)
	}
	writeJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
