package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/cryptox"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/auth"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

func validSignupRequest() *models.SignupRequest {
	return &models.SignupRequest{
		FirstName:       "Ann",
		LastName:        "Lee",
		Username:        "ann",
		Email:           "ann@example.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	}
}

func validUpdateRequest() *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Username:  "ann",
		Email:     "ann@example.com",
	}
}

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{createOut: &models.User{ID: 7, Username: "ann"}}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	user, err := s.Register(context.Background(), validSignupRequest())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("user ID = %d, want 7", user.ID)
	}
	if repo.gotCreate == nil {
		t.Fatalf("repository Create was not called")
	}
	if repo.gotCreate.Username != "ann" || repo.gotCreate.Email != "ann@example.com" {
		t.Errorf("stored user = %+v", repo.gotCreate)
	}
	if repo.gotCreate.Password == "pw123" {
		t.Errorf("plaintext password was stored")
	}
	if !cryptox.CheckPassword(repo.gotCreate.Password, "pw123") {
		t.Errorf("stored hash does not verify against the password")
	}
}

func TestRegister_MissingField(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	req := validSignupRequest()
	req.Email = ""

	_, err := s.Register(context.Background(), req)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
	if repo.gotCreate != nil {
		t.Errorf("user stored despite validation error")
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{}})

	req := validSignupRequest()
	req.ConfirmPassword = "other"

	_, err := s.Register(context.Background(), req)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}

func TestRegister_Taken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{existsOut: true}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	_, err := s.Register(context.Background(), validSignupRequest())
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("expected ErrorConflict, got %v", err)
	}
	if repo.gotCreate != nil {
		t.Errorf("user stored despite conflict")
	}
}

func TestRegister_ConcurrentConflict(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{createErr: common.ErrorConflict}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	_, err := s.Register(context.Background(), validSignupRequest())
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("expected ErrorConflict, got %v", err)
	}
}

func TestRegister_ExistsError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{existsErr: errBoom{}}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	_, err := s.Register(context.Background(), validSignupRequest())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !regexp.MustCompile(`error checking user existence: .*boom`).MatchString(err.Error()) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := cryptox.HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	repo := &fakeUsersRepo{byUsernameOut: &models.User{ID: 7, Username: "ann", Password: hash}}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	user, err := s.Authenticate(context.Background(), "ann", "pw123")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("user ID = %d, want 7", user.ID)
	}
}

func TestAuthenticate_FailureIndistinguishable(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := cryptox.HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	unknown := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameErr: common.ErrorNotFound}})
	_, errUnknown := unknown.Authenticate(context.Background(), "ghost", "pw123")

	wrong := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameOut: &models.User{ID: 7, Username: "ann", Password: hash}}})
	_, errWrong := wrong.Authenticate(context.Background(), "ann", "nope")

	if !errors.Is(errUnknown, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrorInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrorInvalidCredentials, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("failure messages differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestAuthenticate_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameErr: errBoom{}}})

	_, err := s.Authenticate(context.Background(), "ann", "pw123")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := cryptox.HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	repo := &fakeUsersRepo{byUsernameOut: &models.User{ID: 7, Username: "ann", Password: hash}}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	user, token, err := s.Login(context.Background(), &models.LoginRequest{Username: "ann", Password: "pw123"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("user ID = %d, want 7", user.ID)
	}

	claims, err := auth.Verify(token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "ann" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLogin_ValidationError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{}})

	_, _, err := s.Login(context.Background(), &models.LoginRequest{Username: "", Password: "pw123"})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameErr: common.ErrorNotFound}})

	_, _, err := s.Login(context.Background(), &models.LoginRequest{Username: "ghost", Password: "pw123"})
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("expected ErrorInvalidCredentials, got %v", err)
	}
}

func TestProfile_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{byIDOut: &models.User{ID: 7, Username: "ann", Email: "ann@example.com"}}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	user, err := s.Profile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if user.Username != "ann" || user.Email != "ann@example.com" {
		t.Errorf("user = %+v", user)
	}
}

func TestProfile_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{byIDErr: common.ErrorNotFound}})

	_, err := s.Profile(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{}})

	if err := s.UpdateProfile(context.Background(), 7, validUpdateRequest()); err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
}

func TestUpdateProfile_InvalidEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{}})

	req := validUpdateRequest()
	req.Email = "not-an-email"

	err := s.UpdateProfile(context.Background(), 7, req)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}

func TestUpdateProfile_Taken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{existsExceptOut: true}})

	err := s.UpdateProfile(context.Background(), 7, validUpdateRequest())
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("expected ErrorConflict, got %v", err)
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{updateErr: common.ErrorNotFound}})

	err := s.UpdateProfile(context.Background(), 999, validUpdateRequest())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpdateProfile_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{updateErr: errBoom{}}})

	err := s.UpdateProfile(context.Background(), 7, validUpdateRequest())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !regexp.MustCompile(`error updating profile: .*boom`).MatchString(err.Error()) {
		t.Errorf("unexpected error: %v", err)
	}
}
