package http

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"accountgate/internal/logger"
	"accountgate/internal/utils"
	"accountgate/models"

	"github.com/go-chi/chi/v5"
)

// ping reports whether the backing store is reachable.
// Returns 200 with no body on success and 503 when the database ping fails.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.HealthService.PingStore(r.Context()); err != nil {
		log.Err(err).Msg("store ping failed")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// timeInZone resolves the ?tz= query parameter as an IANA timezone name
// and returns the current time in that zone. An empty or missing parameter
// resolves to UTC; an unknown zone name yields 422.
func (h *Handler) timeInZone(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	zoneName := r.URL.Query().Get("tz")
	if zoneName == "" {
		zoneName = "UTC"
	}

	location, err := time.LoadLocation(zoneName)
	if err != nil {
		log.Err(err).Str("zone", zoneName).Msg("unknown timezone requested")
		http.Error(w, "unknown timezone", http.StatusUnprocessableEntity)
		return
	}

	utils.WriteJSON(w, models.TimeResponse{
		Zone: location.String(),
		Time: time.Now().In(location).Format(time.RFC3339),
	}, http.StatusOK)
}

// streamFile serves a single file from the configured binary data directory.
//
// The {name} path parameter is reduced to its base component before lookup,
// so path traversal sequences cannot escape the directory. Unknown names and
// an unconfigured directory both respond with 404.
func (h *Handler) streamFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.filesDir == "" {
		http.NotFound(w, r)
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" || name != filepath.Base(name) {
		log.Warn().Str("name", name).Msg("rejected file name")
		http.NotFound(w, r)
		return
	}

	fullPath := filepath.Join(h.filesDir, name)
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		log.Debug().Str("name", name).Msg("requested file not found")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, fullPath)
}
