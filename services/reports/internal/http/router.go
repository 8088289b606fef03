package http

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *ReportHandler) {
	r.Get("/api/reports/summary", h.Summary)
	r.Get("/api/reports/sla-breaches", h.SlaBreaches)
	r.Get("/api/reports/user/{userId}", h.TasksByUser)
}
