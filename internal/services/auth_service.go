package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"loja/internal/models"
	"loja/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Lockout policy: five consecutive failed attempts block the account
// for five minutes. A successful sign-in resets the counter.
const (
	maxFailedAccessAttempts = 5
	lockoutDuration         = 5 * time.Minute
	minPasswordLength       = 6
)

// CreateUserResult reports the outcome of a user creation request.
// Errors holds the human-readable descriptions of every rule the
// request violated; it is empty when Succeeded is true.
type CreateUserResult struct {
	Succeeded bool
	Errors    []string
}

// SignInResult reports the outcome of a password sign-in attempt.
// User is populated only when Succeeded is true.
type SignInResult struct {
	Succeeded   bool
	IsLockedOut bool
	User        *models.User
}

// AuthService is the identity provider: it owns user creation, password
// sign-in with lockout tracking, and session token issuance.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// CreateUser registers a new user, hashing the password before it is
// stored. Rule violations (taken email, password policy) come back as
// result error descriptions, not as a Go error; the error return is
// reserved for infrastructure failures.
func (s *AuthService) CreateUser(user *models.User, password string) (CreateUserResult, error) {
	var descriptions []string

	existing, err := s.userRepo.GetByEmail(user.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return CreateUserResult{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		descriptions = append(descriptions, fmt.Sprintf("Email '%s' is already taken.", user.Email))
	}
	if len(password) < minPasswordLength {
		descriptions = append(descriptions, fmt.Sprintf("Passwords must be at least %d characters.", minPasswordLength))
	}
	if len(descriptions) > 0 {
		return CreateUserResult{Errors: descriptions}, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return CreateUserResult{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return CreateUserResult{}, fmt.Errorf("failed to create user: %w", err)
	}
	return CreateUserResult{Succeeded: true}, nil
}

// PasswordSignIn checks the credentials for the given email. When
// lockoutOnFailure is true, failed attempts are counted and the account
// is temporarily blocked once the limit is reached. An unknown email is
// reported as a plain failure so callers cannot probe for accounts.
func (s *AuthService) PasswordSignIn(email, password string, lockoutOnFailure bool) (SignInResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return SignInResult{}, nil
		}
		return SignInResult{}, fmt.Errorf("failed to load user: %w", err)
	}

	now := time.Now()
	if user.LockoutUntil != nil && user.LockoutUntil.After(now) {
		return SignInResult{IsLockedOut: true}, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if !lockoutOnFailure {
			return SignInResult{}, nil
		}
		user.AccessFailedCount++
		if user.AccessFailedCount >= maxFailedAccessAttempts {
			until := now.Add(lockoutDuration)
			user.LockoutUntil = &until
			user.AccessFailedCount = 0
			if err := s.userRepo.Update(user); err != nil {
				return SignInResult{}, fmt.Errorf("failed to persist lockout: %w", err)
			}
			// The attempt that trips the limit already reports the block.
			return SignInResult{IsLockedOut: true}, nil
		}
		if err := s.userRepo.Update(user); err != nil {
			return SignInResult{}, fmt.Errorf("failed to persist failed attempt: %w", err)
		}
		return SignInResult{}, nil
	}

	if user.AccessFailedCount != 0 || user.LockoutUntil != nil {
		user.AccessFailedCount = 0
		user.LockoutUntil = nil
		if err := s.userRepo.Update(user); err != nil {
			return SignInResult{}, fmt.Errorf("failed to reset lockout state: %w", err)
		}
	}
	return SignInResult{Succeeded: true, User: user}, nil
}

// GenerateToken issues a signed JWT establishing a session for the user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
