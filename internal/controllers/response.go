package controllers

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"streamsched/internal/editor"
	"streamsched/internal/models"
	"streamsched/internal/providers"
	"streamsched/internal/services"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const maxRequestBodySize = 1 << 20 // 1 MB

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConfirmationRequired), errors.Is(err, editor.ErrNoSession):
		return http.StatusConflict
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, logger providers.Logger, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	if errors.Is(err, models.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

// parseIndex accepts a JSON number or a numeric string.
func parseIndex(v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: index is required", models.ErrValidation)
	}
	i, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: index: %v", models.ErrValidation, err)
	}
	return i, nil
}

// toInt is cast.ToIntE without the silent truncation of fractional numbers.
func toInt(v any) (int, error) {
	if f, ok := v.(float64); ok && f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return cast.ToIntE(v)
}

// parseWeekday accepts a name, a short code or a 0..6 position.
func parseWeekday(v any, field string) (models.Weekday, error) {
	switch val := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: %s is required", models.ErrValidation, field)
	case string:
		return models.ParseWeekday(val)
	}
	pos, err := toInt(v)
	if err != nil || !models.Weekday(pos).Valid() {
		return 0, fmt.Errorf("%w: %s: invalid weekday %v", models.ErrValidation, field, v)
	}
	return models.Weekday(pos), nil
}
