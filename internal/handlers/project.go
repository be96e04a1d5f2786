package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/SHOEB091/code-IDE/internal/services"
	"github.com/SHOEB091/code-IDE/internal/store"
	"github.com/SHOEB091/code-IDE/types"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler provides owner-scoped project CRUD. Every request
// carries the bearer token in its body; a token that fails to resolve
// is rejected with 401 before any lookup happens.
type ProjectHandler struct {
	projects *services.ProjectService
	users    *services.UserService
}

func NewProjectHandler(projects *services.ProjectService, users *services.UserService) *ProjectHandler {
	return &ProjectHandler{projects: projects, users: users}
}

// ProjectRouter registers project routes on the given router.
func ProjectRouter(r chi.Router, projects *services.ProjectService, users *services.UserService) {
	handler := NewProjectHandler(projects, users)

	r.Post("/createProj", handler.CreateProject)
	r.Post("/saveProject", handler.SaveProject)
	r.Post("/getProjects", handler.GetProjects)
	r.Post("/getProject", handler.GetProject)
	r.Post("/deleteProject", handler.DeleteProject)
	r.Post("/editProject", handler.EditProject)
	r.Post("/updateLanguage", handler.UpdateLanguage)
}

type CreateProjectRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Language string `json:"projLanguage"`
	Version  string `json:"version"`
	Runtime  string `json:"runtime"`
}

type CreateProjectResponse struct {
	statusResponse
	ProjectID int `json:"projectId,omitempty"`
}

type ProjectIDRequest struct {
	Token     string `json:"token"`
	ProjectID int    `json:"projectId"`
}

type SaveProjectRequest struct {
	Token     string `json:"token"`
	ProjectID int    `json:"projectId"`
	Code      string `json:"code"`
}

type EditProjectRequest struct {
	Token     string `json:"token"`
	ProjectID int    `json:"projectId"`
	Name      string `json:"name"`
}

type UpdateLanguageRequest struct {
	Token     string `json:"token"`
	ProjectID int    `json:"projectId"`
	Language  string `json:"projLanguage"`
	Version   string `json:"version"`
	Runtime   string `json:"runtime"`
}

type UpdateLanguageResponse struct {
	statusResponse
	DefaultCode string `json:"defaultCode,omitempty"`
}

type ProjectListResponse struct {
	statusResponse
	Projects []types.Project `json:"projects"`
}

type ProjectResponse struct {
	statusResponse
	Project types.Project `json:"project"`
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Language == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	project, err := h.projects.Create(r.Context(), user.ID, services.CreateParams{
		Name:     req.Name,
		Language: req.Language,
		Version:  req.Version,
		Runtime:  req.Runtime,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedLanguage) {
			writeFailure(w, http.StatusBadRequest, "Unsupported language")
			return
		}
		writeFailure(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusOK, CreateProjectResponse{
		statusResponse: statusResponse{Success: true, Msg: "Project created successfully"},
		ProjectID:      project.ID,
	})
}

func (h *ProjectHandler) SaveProject(w http.ResponseWriter, r *http.Request) {
	var req SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	if err := h.projects.SaveCode(r.Context(), req.ProjectID, user.ID, req.Code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "Project not found")
			return
		}
		writeFailure(w, http.StatusInternalServerError, "Failed to save project")
		return
	}

	writeSuccess(w, "Project saved successfully")
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	var req ProjectIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	projects, err := h.projects.List(r.Context(), user.ID)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	writeJSON(w, http.StatusOK, ProjectListResponse{
		statusResponse: statusResponse{Success: true, Msg: "Projects fetched successfully"},
		Projects:       projects,
	})
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	project, err := h.projects.Get(r.Context(), req.ProjectID, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "Project not found")
			return
		}
		writeFailure(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{
		statusResponse: statusResponse{Success: true, Msg: "Project fetched successfully"},
		Project:        project,
	})
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	if err := h.projects.Delete(r.Context(), req.ProjectID, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "Project not found")
			return
		}
		writeFailure(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	writeSuccess(w, "Project deleted successfully")
}

func (h *ProjectHandler) EditProject(w http.ResponseWriter, r *http.Request) {
	var req EditProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	if err := h.projects.Rename(r.Context(), req.ProjectID, user.ID, req.Name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "Project not found")
			return
		}
		writeFailure(w, http.StatusInternalServerError, "Failed to edit project")
		return
	}

	writeSuccess(w, "Project edited successfully")
}

func (h *ProjectHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req UpdateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Language == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, ok := resolveUser(w, r, h.users, req.Token)
	if !ok {
		return
	}

	defaultCode, err := h.projects.ChangeLanguage(r.Context(), req.ProjectID, user.ID, req.Language, req.Version, req.Runtime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedLanguage):
			writeFailure(w, http.StatusBadRequest, "Unsupported language")
		case errors.Is(err, store.ErrNotFound):
			writeFailure(w, http.StatusNotFound, "Project not found")
		default:
			writeFailure(w, http.StatusInternalServerError, "Failed to update language")
		}
		return
	}

	writeJSON(w, http.StatusOK, UpdateLanguageResponse{
		statusResponse: statusResponse{Success: true, Msg: "Language updated successfully"},
		DefaultCode:    defaultCode,
	})
}
