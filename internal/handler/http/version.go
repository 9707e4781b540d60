package http

import (
	"net/http"
)

// versionInfo reports the server build version. The client's connectivity
// prober uses this route as its reachability check.
func (h *Handler) versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
