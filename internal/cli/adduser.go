package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/services"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

func (app *App) runAddUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	firstName := fs.String("first", "", "first name")
	lastName := fs.String("last", "", "last name")
	username := fs.String("u", "", "username")
	email := fs.String("e", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *firstName == "" || *lastName == "" || *username == "" || *email == "" {
		return errors.New("-first, -last, -u and -e are all required")
	}

	password, err := app.promptPassword()
	if err != nil {
		return err
	}

	db, m, err := app.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	users := services.NewUserService(db, m, app.config)

	user, err := users.Register(ctx, &models.SignupRequest{
		FirstName:       *firstName,
		LastName:        *lastName,
		Username:        *username,
		Email:           *email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return fmt.Errorf("username %q or email %q is already taken", *username, *email)
		}
		return err
	}

	fmt.Fprintf(app.out, "created user %d (%s)\n", user.ID, user.Username)
	return nil
}

// promptPassword reads a password from the user's terminal without echo.
// A newline is printed after the read to keep the output tidy.
func (app *App) promptPassword() (string, error) {
	fmt.Fprint(app.out, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(app.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(pw), nil
}
