package cli

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
)

const (
	msgSignedUp      = "Account created successfully!"
	msgSignedIn      = "Welcome back!"
	msgAuthFailed    = "Authentication failed"
	msgLoggedOut     = "Logged out successfully"
	msgLogoutFailed  = "Failed to log out"
	msgAlreadyInside = "Already signed in; log out first"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errEmptyCredentials = common.NewError(common.ErrValidation, "email and password are required")

func (a *App) credentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return "", "", errEmptyCredentials
	}
	return email, string(password), nil
}

func (a *App) authenticate(ctx context.Context, signUp bool) error {
	if a.isLoggedIn() {
		a.println(msgAlreadyInside)
		return nil
	}

	email, password, err := a.credentials()
	if err != nil {
		a.notify(errorNotice(err, common.MessageOr(err, msgAuthFailed)))
		return err
	}

	if signUp {
		err = a.sessions.SignUp(ctx, email, password)
	} else {
		err = a.sessions.SignIn(ctx, email, password)
	}
	if err != nil {
		a.logger.Warn(ctx, "authentication failed", "error", err)
		a.notify(errorNotice(err, common.MessageOr(err, msgAuthFailed)))
		return err
	}

	if signUp {
		a.notify(successNotice(msgSignedUp))
	} else {
		a.notify(successNotice(msgSignedIn))
	}
	return a.List(ctx)
}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, true)
}

// Login signs in with an existing account.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, false)
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not signed in")
		return nil
	}
	if err := a.sessions.SignOut(ctx); err != nil {
		a.notify(errorNotice(err, msgLogoutFailed))
		return err
	}
	a.notify(successNotice(msgLoggedOut))
	return nil
}
