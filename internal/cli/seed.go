package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/services"
)

// seedFile is the on-disk layout of the reference dataset.
type seedFile struct {
	Solutions []*models.DiseaseSolution `json:"solutions"`
	Products  []*models.DiseaseProduct  `json:"products"`
}

func (app *App) runSeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	path := fs.String("f", "reference.json", "path to the reference dataset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return err
	}

	var payload seedFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("error parsing %s: %v", *path, err)
	}
	if len(payload.Solutions) == 0 && len(payload.Products) == 0 {
		return errors.New("reference dataset is empty")
	}

	db, m, err := app.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	reference := services.NewReferenceService(db, m)
	if err := reference.Seed(ctx, payload.Solutions, payload.Products); err != nil {
		return err
	}

	fmt.Fprintf(app.out, "loaded %d solutions and %d products\n", len(payload.Solutions), len(payload.Products))
	return nil
}
