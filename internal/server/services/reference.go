package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/repomanager"
)

// ReferenceService serves the read-only rice disease reference data: known
// diseases, the recommended treatment per disease and purchasable products.
type ReferenceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewReferenceService constructs a ReferenceService bound to the given
// database handle and repository manager.
func NewReferenceService(db *sql.DB, m repomanager.RepositoryManager) *ReferenceService {
	return &ReferenceService{db: db, repomanager: m}
}

// DiseaseSolutions lists every disease/solution pair.
func (s *ReferenceService) DiseaseSolutions(ctx context.Context) ([]*models.DiseaseSolution, error) {
	repo := s.repomanager.Reference(s.db)

	solutions, err := repo.ListSolutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing disease solutions: %v", err)
	}

	return solutions, nil
}

// Diseases lists the distinct disease names present in the reference data.
func (s *ReferenceService) Diseases(ctx context.Context) ([]string, error) {
	repo := s.repomanager.Reference(s.db)

	diseases, err := repo.ListDiseases(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing diseases: %v", err)
	}

	return diseases, nil
}

// Products lists every purchasable treatment product.
func (s *ReferenceService) Products(ctx context.Context) ([]*models.DiseaseProduct, error) {
	repo := s.repomanager.Reference(s.db)

	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing disease products: %v", err)
	}

	return products, nil
}

// Seed replaces the whole reference dataset in one transaction, so readers
// never observe a half-loaded dataset.
func (s *ReferenceService) Seed(ctx context.Context, solutions []*models.DiseaseSolution, products []*models.DiseaseProduct) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Reference(tx)
		if err := repo.ReplaceSolutions(ctx, solutions); err != nil {
			return err
		}
		return repo.ReplaceProducts(ctx, products)
	})
	if err != nil {
		return fmt.Errorf("error seeding reference data: %v", err)
	}

	return nil
}
