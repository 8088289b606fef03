package http

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *UserHandler) {
	r.Post("/auth/login", h.Login)
	r.Get("/api/users", h.ListUsers)
	r.Get("/api/users/{id}", h.GetUser)
	r.Post("/api/users", h.CreateUser)
	r.Put("/api/users/{id}", h.UpdateUser)
	r.Delete("/api/users/{id}", h.DeleteUser)
}
