package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/SHOEB091/code-IDE/internal/services"
	"github.com/SHOEB091/code-IDE/internal/store"
	"github.com/SHOEB091/code-IDE/types"
	"github.com/go-chi/chi/v5"
)

type fakeUserRepo struct {
	nextID int
	users  map[int]types.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (types.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) UpdateProfileImage(_ context.Context, id int, objectKey string) error {
	user, ok := r.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.ProfileImage = objectKey
	r.users[id] = user
	return nil
}

type fakeProjectRepo struct {
	nextID   int
	projects map[int]types.Project
}

func (r *fakeProjectRepo) Get(_ context.Context, id, ownerID int) (types.Project, error) {
	project, ok := r.projects[id]
	if !ok || project.CreatedBy != ownerID {
		return types.Project{}, store.ErrNotFound
	}
	return project, nil
}

func (r *fakeProjectRepo) ListByOwner(_ context.Context, ownerID int) ([]types.Project, error) {
	var owned []types.Project
	for _, project := range r.projects {
		if project.CreatedBy == ownerID {
			owned = append(owned, project)
		}
	}
	return owned, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, project types.Project) (types.Project, error) {
	r.nextID++
	project.ID = r.nextID
	r.projects[project.ID] = project
	return project, nil
}

func (r *fakeProjectRepo) UpdateCode(ctx context.Context, id, ownerID int, code string) error {
	project, err := r.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	project.Code = code
	r.projects[id] = project
	return nil
}

func (r *fakeProjectRepo) Rename(ctx context.Context, id, ownerID int, name string) error {
	project, err := r.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	project.Name = name
	r.projects[id] = project
	return nil
}

func (r *fakeProjectRepo) UpdateLanguage(ctx context.Context, id, ownerID int, language, version, runtime, code string) error {
	project, err := r.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	project.Language = language
	project.Version = version
	project.Runtime = runtime
	project.Code = code
	r.projects[id] = project
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, ownerID int) error {
	if _, err := r.Get(ctx, id, ownerID); err != nil {
		return err
	}
	delete(r.projects, id)
	return nil
}

// testEnv wires the auth and project routes over in-memory
// repositories.
type testEnv struct {
	router   *chi.Mux
	users    *services.UserService
	projects *services.ProjectService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userService := services.NewUserService(&fakeUserRepo{users: map[int]types.User{}}, "test-secret")
	projectService := services.NewProjectService(&fakeProjectRepo{projects: map[int]types.Project{}})

	router := chi.NewRouter()
	AuthRouter(router, userService)
	ProjectRouter(router, projectService, userService)

	return &testEnv{router: router, users: userService, projects: projectService}
}

func (e *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()

	rec := e.post(t, "/register", map[string]string{
		"email": email, "pwd": "secret123", "name": "Test User",
	})
	if rec.Code != 200 {
		t.Fatalf("register %s: status %d, body %s", email, rec.Code, rec.Body)
	}

	rec = e.post(t, "/login", map[string]string{"email": email, "pwd": "secret123"})
	if rec.Code != 200 {
		t.Fatalf("login %s: status %d, body %s", email, rec.Code, rec.Body)
	}

	var resp LoginResponse
	decode(t, rec, &resp)
	if resp.Token == "" {
		t.Fatalf("login %s returned no token", email)
	}
	return resp.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, value any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), value); err != nil {
		t.Fatalf("decode response %s: %v", rec.Body, err)
	}
}
