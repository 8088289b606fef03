package http

import "github.com/go-chi/chi/v5"

// RegisterRoutes wires the task API. Static routes are registered before the
// {id} pattern so /sla-breaches is never captured as an id.
func RegisterRoutes(r chi.Router, h *TaskHandler) {
	r.Get("/api/tasks", h.ListTasks)
	r.Get("/api/tasks/sla-breaches", h.SlaBreaches)
	r.Get("/api/tasks/{id}", h.GetTask)
	r.Post("/api/tasks", h.CreateTask)
	r.Put("/api/tasks/{id}", h.UpdateTask)
	r.Delete("/api/tasks/{id}", h.DeleteTask)
}
