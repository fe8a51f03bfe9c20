// Package services holds the credential logic: password hashing and
// verification, session token issue/parse, and login.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rdmitr/portfolio-cms/internal/models"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 8 * time.Hour

// ErrInvalidCredentials covers every login failure path so responses do
// not reveal whether the email exists or the account is inactive.
var ErrInvalidCredentials = errors.New("Invalid credentials.")

// dummyHash is verified against on the unknown-email path so that a
// lookup miss takes as long as a wrong password.
var dummyHash = func() string {
	hash, err := HashPassword("timing-pad")
	if err != nil {
		panic(err)
	}
	return hash
}()

// Claims is the identity payload embedded in a session token.
type Claims struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a signed HS256 token for the user.
func GenerateToken(secret string, user models.User) (string, error) {
	claims := Claims{
		ID:   user.ID.Hex(),
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token and returns its claims. It fails for a
// bad signature, a malformed token, or an expired one.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// UserStore is the lookup the login flow needs from persistence. The
// email match is case-insensitive.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// Auth authenticates users against a user store.
type Auth struct {
	users  UserStore
	secret string
}

func NewAuth(users UserStore, secret string) *Auth {
	return &Auth{users: users, secret: secret}
}

// Login verifies the credentials of an Active user and returns a session
// token together with the user record.
func (a *Auth) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		VerifyPassword(password, dummyHash)
		return "", models.User{}, ErrInvalidCredentials
	}
	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}
	// The status check comes after password verification so every
	// rejection costs the same.
	if user.Status != models.StatusActive {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(a.secret, user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}
