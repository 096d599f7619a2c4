package routers

import (
	"blogpost-api/handlers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the HTTP routes for the blog post resource
func RegisterRoutes(r *mux.Router, h *handlers.Handler) {
	r.Use(handlers.RequestLogger)

	// Lists every blog post
	r.HandleFunc("/blogposts", h.ListPosts).Methods("GET")

	// Creates a post; id and created are assigned by the server
	r.HandleFunc("/blogposts", h.CreatePost).Methods("POST")

	r.HandleFunc("/blogposts/{id}", h.GetPost).Methods("GET")

	// Overwrites only the fields present in the body
	r.HandleFunc("/blogposts/{id}", h.ReplacePost).Methods("PUT")

	r.HandleFunc("/blogposts/{id}", h.DeletePost).Methods("DELETE")
}

// NewRouter returns a mux.Router with the blog post routes registered
func NewRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()
	RegisterRoutes(r, h)
	return r
}
