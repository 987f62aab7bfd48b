package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkguid"
)

// HandlerFunc is the shape of every endpoint handler: it returns the
// response body to encode, or an error mapped to an HTTP status.
type HandlerFunc func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *http.ServeMux
	uid pkguid.StringID
}

func NewRouter(uid pkguid.StringID) *Router {
	return &Router{
		mux: http.NewServeMux(),
		uid: uid,
	}
}

func (rt *Router) GET(path string, handler HandlerFunc) {
	rt.handle(http.MethodGet, path, handler)
}

func (rt *Router) POST(path string, handler HandlerFunc) {
	rt.handle(http.MethodPost, path, handler)
}

func (rt *Router) handle(method, path string, handler HandlerFunc) {
	rt.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		requestID := rt.uid.Generate()
		w.Header().Set("X-Request-Id", requestID)

		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(r.Context(), "handler panic", "request_id", requestID, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
			}
		}()

		data, err := handler(r.Context(), r)
		if err != nil {
			writeError(w, r.Context(), requestID, err)
			return
		}

		writeJSON(w, http.StatusOK, data)
	})
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, ctx context.Context, requestID string, err error) {
	if business, ok := pkgerror.AsBusiness(err); ok {
		status := http.StatusBadRequest
		if business.Code() == pkgerror.CodeNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorBody{Error: business.Error()})
		return
	}

	slog.ErrorContext(ctx, "handler failed", "request_id", requestID, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // response already committed
	json.NewEncoder(w).Encode(body)
}
