package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/scribo/internal/catalog"
)

// Generation is a row in the generations table: one piece of generated
// content. The API key used is never stored. Owner is the opaque token of the
// browser session that asked for it; generations made outside the web UI have
// no owner and are never listed there.
type Generation struct {
	ID         string       `db:"id"`
	Owner      string       `db:"owner"`
	Tool       catalog.Kind `db:"tool"`
	TemplateID string       `db:"template_id"`
	Prompt     string       `db:"prompt"`
	Content    string       `db:"content"`
	Provider   string       `db:"provider"`
	Model      string       `db:"model"`
	CreatedAt  time.Time    `db:"created_at"`
}

// NewGeneration is the input to GenerationStore.Create.
type NewGeneration struct {
	Owner      string
	Tool       catalog.Kind
	TemplateID string
	Prompt     string
	Content    string
	Provider   string
	Model      string
}

// GenerationStore is the sqlx-backed store for generated content.
type GenerationStore struct {
	db *sqlx.DB
}

func NewGenerationStore(db *sqlx.DB) *GenerationStore {
	return &GenerationStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *GenerationStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a generation and returns it.
func (s *GenerationStore) Create(ctx context.Context, g NewGeneration) (*Generation, error) {
	out := &Generation{
		ID:         uuid.New().String(),
		Owner:      g.Owner,
		Tool:       g.Tool,
		TemplateID: g.TemplateID,
		Prompt:     g.Prompt,
		Content:    g.Content,
		Provider:   g.Provider,
		Model:      g.Model,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO generations (id, owner, tool, template_id, prompt, content, provider, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), out.ID, out.Owner, out.Tool, out.TemplateID, out.Prompt, out.Content, out.Provider, out.Model, out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns owner's generation with the given ID, or ErrNotFound. Another
// owner's generation is reported as not found.
func (s *GenerationStore) Get(ctx context.Context, owner, id string) (*Generation, error) {
	var g Generation
	err := s.db.GetContext(ctx, &g, s.q(`SELECT * FROM generations WHERE owner = ? AND id = ?`), owner, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListRecent returns up to limit of owner's generations, newest first. An
// empty tool lists every tool.
func (s *GenerationStore) ListRecent(ctx context.Context, owner string, tool catalog.Kind, limit int) ([]*Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	var gens []*Generation
	var err error
	if tool == "" {
		err = s.db.SelectContext(ctx, &gens, s.q(`
			SELECT * FROM generations WHERE owner = ? ORDER BY created_at DESC LIMIT ?
		`), owner, limit)
	} else {
		err = s.db.SelectContext(ctx, &gens, s.q(`
			SELECT * FROM generations WHERE owner = ? AND tool = ? ORDER BY created_at DESC LIMIT ?
		`), owner, tool, limit)
	}
	if err != nil {
		return nil, err
	}
	return gens, nil
}

// Count returns the number of stored generations.
func (s *GenerationStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM generations`)
	return n, err
}

// Delete removes owner's generation by ID.
func (s *GenerationStore) Delete(ctx context.Context, owner, id string) error {
	result, err := s.db.ExecContext(ctx, s.q(`DELETE FROM generations WHERE owner = ? AND id = ?`), owner, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
