package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"caesar/internal/ctxlog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	content, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("server: marshal response: %w", err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(status)
	if _, err := w.Write(content); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
		return
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

func errorHandler(status int) http.Handler {
	msg := http.StatusText(status)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, status, msg)
	})
}

func notFoundHandler() http.Handler {
	return errorHandler(http.StatusNotFound)
}

func tooManyRequestsHandler() http.Handler {
	return errorHandler(http.StatusTooManyRequests)
}

func internalServerErrorHandler() http.Handler {
	return errorHandler(http.StatusInternalServerError)
}
