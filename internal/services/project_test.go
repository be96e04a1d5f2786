package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SHOEB091/code-IDE/internal/store"
	"github.com/SHOEB091/code-IDE/types"
)

type fakeProjectRepo struct {
	nextID   int
	projects map[int]types.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[int]types.Project{}}
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

func TestCreateSeedsDefaults(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{Name: "t1", Language: "python"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if project.Code != `print("Hello World")` {
		t.Errorf("code = %q, want python starter", project.Code)
	}
	if project.Version != "3.10.0" {
		t.Errorf("version = %q, want 3.10.0", project.Version)
	}
	if project.Runtime != "python" {
		t.Errorf("runtime = %q, want python", project.Runtime)
	}
	if project.CreatedBy != 1 {
		t.Errorf("createdBy = %d, want 1", project.CreatedBy)
	}
}

func TestCreatePlaceholder(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{Name: "p1", Language: "placeholder"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.Code != "Language not supported" {
		t.Errorf("placeholder code = %q", project.Code)
	}
	if project.Version != "latest" {
		t.Errorf("placeholder version = %q, want latest", project.Version)
	}
}

func TestCreateExplicitVersionWins(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{
		Name: "t", Language: "python", Version: "3.9.0", Runtime: "pypy",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.Version != "3.9.0" || project.Runtime != "pypy" {
		t.Fatalf("version/runtime = %q/%q, want explicit values", project.Version, project.Runtime)
	}
}

func TestCreateUnsupportedLanguage(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	if _, err := svc.Create(context.Background(), 1, CreateParams{Name: "t", Language: "ruby"}); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("Create error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestChangeLanguageResetsStarter(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{Name: "p1", Language: "placeholder"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.SaveCode(context.Background(), project.ID, 1, "scratch work"); err != nil {
		t.Fatalf("SaveCode: %v", err)
	}

	defaultCode, err := svc.ChangeLanguage(context.Background(), project.ID, 1, "python", "3.10.0", "")
	if err != nil {
		t.Fatalf("ChangeLanguage: %v", err)
	}
	if defaultCode != `print("Hello World")` {
		t.Fatalf("defaultCode = %q", defaultCode)
	}

	updated, err := svc.Get(context.Background(), project.ID, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if updated.Language != "python" || updated.Code != defaultCode {
		t.Fatalf("project after language change = %+v", updated)
	}
	if updated.Version != "3.10.0" || updated.Runtime != "python" {
		t.Fatalf("version/runtime = %q/%q", updated.Version, updated.Runtime)
	}
}

func TestSaveCodeIdempotent(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{Name: "t", Language: "go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	const code = `package main; func main() {}`
	for i := 0; i < 2; i++ {
		if err := svc.SaveCode(context.Background(), project.ID, 1, code); err != nil {
			t.Fatalf("SaveCode %d: %v", i, err)
		}
	}

	stored, err := svc.Get(context.Background(), project.ID, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Code != code {
		t.Fatalf("stored code = %q", stored.Code)
	}
}

func TestOwnerScoping(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{Name: "t", Language: "c"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), project.ID, 2); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get by non-owner error = %v, want store.ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), project.ID, 2); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Delete by non-owner error = %v, want store.ErrNotFound", err)
	}
	if _, err := svc.Get(context.Background(), project.ID, 1); err != nil {
		t.Fatalf("project must survive a non-owner delete: %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), 1, CreateParams{Name: "t", Language: "bash"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), project.ID, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), project.ID, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want store.ErrNotFound", err)
	}
}
