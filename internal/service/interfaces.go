package service

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// TokenService signs usernames into bearer tokens and verifies them back.
// Implementations hold only immutable signing parameters and are safe for
// concurrent use.
type TokenService interface {
	// Sign mints a token whose subject is username. It fails with
	// ErrInvalidInput for an empty username.
	Sign(username string) (string, error)

	// Verify returns the token subject and true if raw (optionally prefixed
	// with "Bearer ") carries a valid signature and has not expired.
	// Every other input yields ("", false); Verify never fails otherwise.
	Verify(raw string) (string, bool)
}

// AuthService exchanges credentials for tokens and tokens for identities.
type AuthService interface {
	// Login checks creds against the credential store. Unknown usernames and
	// wrong passwords both yield ErrCredentialMismatch.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// IssueToken mints a bearer token for an already verified user.
	IssueToken(ctx context.Context, user models.User) (string, error)

	// Authenticate turns an Authorization header value into an
	// authentication context. It never rejects: anything but a valid
	// "Bearer <token>" produces the anonymous context.
	Authenticate(ctx context.Context, authorizationHeader string) models.AuthenticationContext
}

// UserService is the account surface consumed by the HTTP handlers.
type UserService interface {
	// Create registers a new account with a bcrypt-hashed password.
	Create(ctx context.Context, creds models.Credentials) (models.User, error)

	// Profile returns the account stored under username.
	Profile(ctx context.Context, username string) (models.User, error)
}

// CredentialStore is the user-lookup capability the login flow depends on.
// It returns store.ErrNoUserWasFound for unknown usernames.
type CredentialStore interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// PasswordHasher is the password hashing capability.
// Verify returns utils.ErrPasswordMismatch when password does not match digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) error
}
