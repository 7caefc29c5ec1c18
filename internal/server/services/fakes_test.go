package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
	referencerepo "github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/reference"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/repomanager"
	sessionlogrepo "github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/sessionlog"
	usersrepo "github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
		BCryptCost:            bcrypt.MinCost,
	}
	return NewUserService(db, rm, cfg)
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	gotCreate *models.User

	byUsernameOut *models.User
	byUsernameErr error

	byIDOut *models.User
	byIDErr error

	existsOut bool
	existsErr error

	existsExceptOut bool
	existsExceptErr error

	updateErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.gotCreate = user
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) Exists(ctx context.Context, username, email string) (bool, error) {
	return f.existsOut, f.existsErr
}

func (f *fakeUsersRepo) ExistsExcept(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	return f.existsExceptOut, f.existsExceptErr
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id int64, firstName, lastName, username, email string) error {
	return f.updateErr
}

type fakeSessionLogRepo struct {
	createOut *models.SessionRecord
	createErr error
	gotLogin  time.Time

	closeOut  *models.SessionRecord
	closeErr  error
	gotLogout time.Time
}

func (f *fakeSessionLogRepo) Create(ctx context.Context, userID int64, loginTime time.Time) (*models.SessionRecord, error) {
	f.gotLogin = loginTime
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeSessionLogRepo) CloseLatestOpen(ctx context.Context, userID int64, logoutTime time.Time) (*models.SessionRecord, error) {
	f.gotLogout = logoutTime
	if f.closeErr != nil {
		return nil, f.closeErr
	}
	return f.closeOut, nil
}

type fakeReferenceRepo struct {
	solutionsOut []*models.DiseaseSolution
	solutionsErr error

	diseasesOut []string
	diseasesErr error

	productsOut []*models.DiseaseProduct
	productsErr error

	replaceSolutionsErr error
	gotSolutions        []*models.DiseaseSolution

	replaceProductsErr error
	gotProducts        []*models.DiseaseProduct
}

func (f *fakeReferenceRepo) ListSolutions(ctx context.Context) ([]*models.DiseaseSolution, error) {
	if f.solutionsErr != nil {
		return nil, f.solutionsErr
	}
	return f.solutionsOut, nil
}

func (f *fakeReferenceRepo) ListDiseases(ctx context.Context) ([]string, error) {
	if f.diseasesErr != nil {
		return nil, f.diseasesErr
	}
	return f.diseasesOut, nil
}

func (f *fakeReferenceRepo) ListProducts(ctx context.Context) ([]*models.DiseaseProduct, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return f.productsOut, nil
}

func (f *fakeReferenceRepo) ReplaceSolutions(ctx context.Context, solutions []*models.DiseaseSolution) error {
	f.gotSolutions = solutions
	return f.replaceSolutionsErr
}

func (f *fakeReferenceRepo) ReplaceProducts(ctx context.Context, products []*models.DiseaseProduct) error {
	f.gotProducts = products
	return f.replaceProductsErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSessionLogRepo
	r *fakeReferenceRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) SessionLog(db dbx.DBTX) sessionlogrepo.Repository { return m.s }
func (m *fakeRepoManager) Reference(db dbx.DBTX) referencerepo.Repository   { return m.r }
