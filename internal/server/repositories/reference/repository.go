package reference

import (
	"context"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

type Repository interface {
	ListSolutions(ctx context.Context) ([]*models.DiseaseSolution, error)
	ListDiseases(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context) ([]*models.DiseaseProduct, error)
	ReplaceSolutions(ctx context.Context, solutions []*models.DiseaseSolution) error
	ReplaceProducts(ctx context.Context, products []*models.DiseaseProduct) error
}
