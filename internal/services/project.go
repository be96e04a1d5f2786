package services

import (
	"context"

	"github.com/SHOEB091/code-IDE/internal/lang"
	"github.com/SHOEB091/code-IDE/types"
)

// ProjectRepository defines persistence operations for projects. All
// lookups and mutations are owner-scoped.
type ProjectRepository interface {
	Get(ctx context.Context, id, ownerID int) (types.Project, error)
	ListByOwner(ctx context.Context, ownerID int) ([]types.Project, error)
	Create(ctx context.Context, project types.Project) (types.Project, error)
	UpdateCode(ctx context.Context, id, ownerID int, code string) error
	Rename(ctx context.Context, id, ownerID int, name string) error
	UpdateLanguage(ctx context.Context, id, ownerID int, language, version, runtime, code string) error
	Delete(ctx context.Context, id, ownerID int) error
}

// ProjectService encapsulates project use-cases: creation with
// server-side language/version/runtime defaults, owner-scoped CRUD,
// and language changes that reset the source to a fresh starter.
type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// CreateParams carries the client-supplied fields for a new project.
// Version and Runtime are optional; defaults are resolved here.
type CreateParams struct {
	Name     string
	Language string
	Version  string
	Runtime  string
}

// Create seeds a new project with the starter template for its
// language. The language must belong to the supported set or be the
// placeholder sentinel.
func (s *ProjectService) Create(ctx context.Context, ownerID int, params CreateParams) (types.Project, error) {
	if !lang.IsSupported(params.Language) {
		return types.Project{}, ErrUnsupportedLanguage
	}

	version := params.Version
	if version == "" {
		version = lang.ResolveVersion(params.Language, "")
	}
	runtime := params.Runtime
	if runtime == "" {
		runtime = lang.Runtime(params.Language)
	}

	return s.repo.Create(ctx, types.Project{
		Name:      params.Name,
		Language:  params.Language,
		Code:      lang.StarterCode(params.Language),
		CreatedBy: ownerID,
		Version:   version,
		Runtime:   runtime,
	})
}

func (s *ProjectService) Get(ctx context.Context, id, ownerID int) (types.Project, error) {
	return s.repo.Get(ctx, id, ownerID)
}

func (s *ProjectService) List(ctx context.Context, ownerID int) ([]types.Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// SaveCode replaces the project's source text. Saving identical code
// is a no-op at the data level, so the call is idempotent.
func (s *ProjectService) SaveCode(ctx context.Context, id, ownerID int, code string) error {
	return s.repo.UpdateCode(ctx, id, ownerID, code)
}

func (s *ProjectService) Rename(ctx context.Context, id, ownerID int, name string) error {
	return s.repo.Rename(ctx, id, ownerID, name)
}

// ChangeLanguage switches the project to another language, resetting
// the source to that language's starter template, and returns the new
// starter so the client can render it immediately.
func (s *ProjectService) ChangeLanguage(ctx context.Context, id, ownerID int, language, version, runtime string) (string, error) {
	if !lang.IsSupported(language) {
		return "", ErrUnsupportedLanguage
	}

	if version == "" {
		version = lang.ResolveVersion(language, "")
	}
	if runtime == "" {
		runtime = lang.Runtime(language)
	}

	starter := lang.StarterCode(language)
	if err := s.repo.UpdateLanguage(ctx, id, ownerID, language, version, runtime, starter); err != nil {
		return "", err
	}
	return starter, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, ownerID int) error {
	return s.repo.Delete(ctx, id, ownerID)
}
