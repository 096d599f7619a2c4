package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogpost-api/blog"
	"blogpost-api/logger"
	"blogpost-api/models"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler contains the HTTP handlers for the blog post API endpoints
type Handler struct {
	Posts *blog.Service
}

// NewHandler creates and returns a new Handler instance
func NewHandler(s *blog.Service) *Handler {
	return &Handler{Posts: s}
}

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Warn("Failed to encode response", zap.Error(err))
	}
}

// writeError writes an {"error": msg} body
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError writes err with its mapped status; store faults are not echoed to clients
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	writeError(w, status, msg)
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, blog.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListPosts handles GET /blogposts
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.List()
	if err != nil {
		logger.Logger.Error("Failed to list blog posts", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	views := make([]models.BlogPostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.Serialize())
	}
	writeJSON(w, http.StatusOK, views)
}

// GetPost handles GET /blogposts/{id}
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	post, err := h.Posts.Get(id)
	if err != nil {
		logger.Logger.Error("Failed to get blog post", zap.String("post_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post.Serialize())
}

// CreatePost handles POST /blogposts
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in blog.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.Logger.Error("Failed to decode blog post", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := h.Posts.Create(in)
	if err != nil {
		logger.Logger.Error("Failed to create blog post", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	logger.Logger.Info("Created blog post", zap.String("post_id", post.ID))
	writeJSON(w, http.StatusCreated, post.Serialize())
}

// ReplacePost handles PUT /blogposts/{id}; only the supplied fields change
func (h *Handler) ReplacePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in blog.ReplaceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.Logger.Error("Failed to decode blog post update", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := h.Posts.Replace(id, in)
	if err != nil {
		logger.Logger.Error("Failed to update blog post", zap.String("post_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post.Serialize())
}

// DeletePost handles DELETE /blogposts/{id}
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Posts.Delete(id); err != nil {
		logger.Logger.Error("Failed to delete blog post", zap.String("post_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	logger.Logger.Info("Deleted blog post", zap.String("post_id", id))
	w.WriteHeader(http.StatusNoContent)
}
