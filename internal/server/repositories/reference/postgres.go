// Package reference provides PostgreSQL-backed read access to the rice
// disease reference data (solutions and treatment products), plus bulk
// replace operations for seeding.
package reference

import (
	"context"
	"fmt"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

// PostgresRepository implements reference data access over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListSolutions returns every disease/solution row.
func (r *PostgresRepository) ListSolutions(ctx context.Context) ([]*models.DiseaseSolution, error) {
	query := `
		SELECT id, disease, solution FROM disease_solutions
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.DiseaseSolution
	for rows.Next() {
		var item models.DiseaseSolution
		if err := rows.Scan(&item.ID, &item.Disease, &item.Solution); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListDiseases returns the distinct disease names present in the solutions
// table, alphabetically.
func (r *PostgresRepository) ListDiseases(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT disease FROM disease_solutions
		ORDER BY disease
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var disease string
		if err := rows.Scan(&disease); err != nil {
			return nil, err
		}
		result = append(result, disease)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListProducts returns every treatment product row.
func (r *PostgresRepository) ListProducts(ctx context.Context) ([]*models.DiseaseProduct, error) {
	query := `
		SELECT id, name, disease, link FROM disease_products
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.DiseaseProduct
	for rows.Next() {
		var item models.DiseaseProduct
		if err := rows.Scan(&item.ID, &item.Name, &item.Disease, &item.Link); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceSolutions deletes all solution rows and inserts the given set.
// Callers are expected to run it inside a transaction (dbx.WithTx) so a
// partial replace is never visible.
func (r *PostgresRepository) ReplaceSolutions(ctx context.Context, solutions []*models.DiseaseSolution) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM disease_solutions`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	query := `
		INSERT INTO disease_solutions (disease, solution)
		VALUES ($1, $2)
	`
	for _, s := range solutions {
		if _, err := r.db.ExecContext(ctx, query, s.Disease, s.Solution); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

// ReplaceProducts deletes all product rows and inserts the given set.
// Callers are expected to run it inside a transaction (dbx.WithTx).
func (r *PostgresRepository) ReplaceProducts(ctx context.Context, products []*models.DiseaseProduct) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM disease_products`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	query := `
		INSERT INTO disease_products (name, disease, link)
		VALUES ($1, $2, $3)
	`
	for _, p := range products {
		if _, err := r.db.ExecContext(ctx, query, p.Name, p.Disease, p.Link); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}
