package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/airtribe-projects/task-manager-api-akki772/internal/repository"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/storage"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/validation"
	"github.com/airtribe-projects/task-manager-api-akki772/pkg/response"
)

type Handler struct {
	mux   *http.ServeMux
	store repository.TaskRepository
}

func New(store repository.TaskRepository) http.Handler {
	h := &Handler{
		mux:   http.NewServeMux(),
		store: store,
	}
	h.routes()
	return withRequestID(h)
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /health", h.handle(h.health))
	h.mux.HandleFunc("GET /tasks", h.handle(h.listTasks))
	h.mux.HandleFunc("POST /tasks", h.handle(h.createTask))
	h.mux.HandleFunc("GET /tasks/{id}", h.handle(h.getTask))
	h.mux.HandleFunc("PUT /tasks/{id}", h.handle(h.updateTask))
	h.mux.HandleFunc("DELETE /tasks/{id}", h.handle(h.deleteTask))
	// Method-less fallbacks keep unsupported methods on known paths in the
	// JSON 404 contract instead of ServeMux's plain-text 405.
	h.mux.HandleFunc("/tasks", h.handle(h.routeNotFound))
	h.mux.HandleFunc("/tasks/{id}", h.handle(h.routeNotFound))
	h.mux.HandleFunc("/", h.handle(h.routeNotFound))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// result is what a handler core produces; handle maps it to the wire.
type result struct {
	status int
	body   any
}

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type healthBody struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	TotalTasks int    `json:"totalTasks"`
}

func invalidID() result {
	return result{http.StatusBadRequest, errorBody{Error: "Invalid task ID"}}
}

func taskNotFound() result {
	return result{http.StatusNotFound, errorBody{Error: "Task not found"}}
}

func validationFailed(details []string) result {
	return result{http.StatusBadRequest, errorBody{Error: "Validation failed", Details: details}}
}

func internalError(err error) result {
	log.Printf("internal error: %v", err)
	return result{http.StatusInternalServerError, errorBody{Error: "Internal server error"}}
}

// handle adapts a handler core to http.HandlerFunc. It is the single place
// results become HTTP responses; panics are logged and surfaced as a
// generic 500 with no internal detail.
func (h *Handler) handle(fn func(r *http.Request) result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic handling %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				response.JSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
			}
		}()
		res := fn(r)
		response.JSON(w, res.status, res.body)
	}
}

func (h *Handler) health(r *http.Request) result {
	return result{http.StatusOK, healthBody{
		Status:     "OK",
		Message:    "Task Manager API is running",
		TotalTasks: h.store.Len(),
	}}
}

func (h *Handler) listTasks(r *http.Request) result {
	return result{http.StatusOK, h.store.List()}
}

func (h *Handler) getTask(r *http.Request) result {
	id, ok := validation.ParseID(r.PathValue("id"))
	if !ok {
		return invalidID()
	}
	task, err := h.store.Get(id)
	if errors.Is(err, storage.ErrNotFound) {
		return taskNotFound()
	}
	if err != nil {
		return internalError(err)
	}
	return result{http.StatusOK, task}
}

func (h *Handler) createTask(r *http.Request) result {
	var payload validation.TaskPayload
	if err := decodeJSON(r, &payload); err != nil {
		return validationFailed([]string{"request body must be valid JSON"})
	}
	fields, errs := validation.CheckCreate(payload)
	if len(errs) > 0 {
		return validationFailed(errs)
	}
	task := h.store.Create(fields.Title, fields.Description, fields.Completed)
	return result{http.StatusCreated, task}
}

func (h *Handler) updateTask(r *http.Request) result {
	id, ok := validation.ParseID(r.PathValue("id"))
	if !ok {
		return invalidID()
	}
	var payload validation.TaskPayload
	if err := decodeJSON(r, &payload); err != nil {
		return validationFailed([]string{"request body must be valid JSON"})
	}
	fields, errs := validation.CheckUpdate(payload)
	if len(errs) > 0 {
		return validationFailed(errs)
	}
	task, err := h.store.Update(id, fields.Title, fields.Description, fields.Completed)
	if errors.Is(err, storage.ErrNotFound) {
		return taskNotFound()
	}
	if err != nil {
		return internalError(err)
	}
	return result{http.StatusOK, task}
}

func (h *Handler) deleteTask(r *http.Request) result {
	id, ok := validation.ParseID(r.PathValue("id"))
	if !ok {
		return invalidID()
	}
	task, err := h.store.Delete(id)
	if errors.Is(err, storage.ErrNotFound) {
		return taskNotFound()
	}
	if err != nil {
		return internalError(err)
	}
	return result{http.StatusOK, task}
}

func (h *Handler) routeNotFound(r *http.Request) result {
	return result{http.StatusNotFound, errorBody{Error: "Route not found"}}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data")
	}
	return nil
}
