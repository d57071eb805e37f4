package handler

import (
	"fmt"
	"net/http"

	"github.com/pereras/fueltrackr/backend/internal/report"
	"github.com/pereras/fueltrackr/backend/internal/service"
)

// Export handles GET /export?resource=...&format=... (admin only).
// The resource selects which dataset is flattened into a table; the format
// selects the renderer. The response is sent as a download with a filename
// derived from the resource, e.g. "travel_logs.csv".
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	resource, err := service.ParseExportResource(r.URL.Query().Get("resource"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	table, err := s.export.BuildTable(r.Context(), resource)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out, err := report.Render(table, format)
	if err != nil {
		respondError(w, r, err)
		return
	}

	filename := fmt.Sprintf("%s.%s", resource.Filename(), format.Extension())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
