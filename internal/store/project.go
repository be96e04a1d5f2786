package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SHOEB091/code-IDE/types"
)

// ProjectRepository handles persistence for projects. Every lookup and
// mutation is scoped by the owning user id.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, name, language, code, created_by, version, runtime, created_at`

func (r *ProjectRepository) Get(ctx context.Context, id, ownerID int) (types.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND created_by = $2`
	var project types.Project
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&project.ID,
		&project.Name,
		&project.Language,
		&project.Code,
		&project.CreatedBy,
		&project.Version,
		&project.Runtime,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Project{}, ErrNotFound
		}
		return types.Project{}, err
	}
	return project, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID int) ([]types.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE created_by = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]types.Project, 0)
	for rows.Next() {
		var project types.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Language,
			&project.Code,
			&project.CreatedBy,
			&project.Version,
			&project.Runtime,
			&project.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project types.Project) (types.Project, error) {
	project.CreatedAt = time.Now()

	const query = `
		INSERT INTO projects (name, language, code, created_by, version, runtime, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		project.Name,
		project.Language,
		project.Code,
		project.CreatedBy,
		project.Version,
		project.Runtime,
		project.CreatedAt,
	).Scan(&project.ID); err != nil {
		return types.Project{}, err
	}
	return project, nil
}

func (r *ProjectRepository) UpdateCode(ctx context.Context, id, ownerID int, code string) error {
	const query = `UPDATE projects SET code = $1 WHERE id = $2 AND created_by = $3`
	return r.exec(ctx, query, code, id, ownerID)
}

func (r *ProjectRepository) Rename(ctx context.Context, id, ownerID int, name string) error {
	const query = `UPDATE projects SET name = $1 WHERE id = $2 AND created_by = $3`
	return r.exec(ctx, query, name, id, ownerID)
}

// UpdateLanguage replaces the language, version, and runtime together
// with the source text, which is reset to the new language's starter.
func (r *ProjectRepository) UpdateLanguage(ctx context.Context, id, ownerID int, language, version, runtime, code string) error {
	const query = `
		UPDATE projects
		SET language = $1,
			version = $2,
			runtime = $3,
			code = $4
		WHERE id = $5 AND created_by = $6`
	return r.exec(ctx, query, language, version, runtime, code, id, ownerID)
}

func (r *ProjectRepository) Delete(ctx context.Context, id, ownerID int) error {
	const query = `DELETE FROM projects WHERE id = $1 AND created_by = $2`
	return r.exec(ctx, query, id, ownerID)
}

func (r *ProjectRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
