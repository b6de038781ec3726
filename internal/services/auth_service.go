package services

import (
	stderrors "errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/todoplanner/todo-planner-api/internal/auth"
	"github.com/todoplanner/todo-planner-api/internal/constants"
	"github.com/todoplanner/todo-planner-api/internal/errors"
	"github.com/todoplanner/todo-planner-api/internal/models"
	"github.com/todoplanner/todo-planner-api/internal/repository"
	"github.com/todoplanner/todo-planner-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAllFieldsRequired = errors.New(errors.KindValidation, "All fields must be filled!")
	ErrInvalidEmail      = errors.New(errors.KindValidation, "Enter a valid email address!")
	ErrWeakPassword      = errors.New(errors.KindValidation, "Password not strong enough! Must be at least 8 characters long, contain uppercase and lowercase letters, and a special character.")
	ErrNoUpdateFields    = errors.New(errors.KindValidation, "At least one field must be updated!")
	ErrUsernameTaken     = errors.New(errors.KindConflict, "Username is already taken!")
	ErrEmailTaken        = errors.New(errors.KindConflict, "Email is already registered!")
	ErrLoginNotFound     = errors.New(errors.KindNotFound, "User Not Found! Please try again or sign up.")
	ErrUserNotFound      = errors.New(errors.KindNotFound, "User not found!")
	ErrAccountDeleted    = errors.New(errors.KindDeleted, "User deleted! Recover your account first!")
	ErrIncorrectPassword = errors.New(errors.KindInvalidCredentials, "Incorrect Password.")
)

// AuthService handles account registration, credentials, and profile
// lifecycle.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	LastName string
}

// Register creates a new account and returns a signed bearer token for it.
func (s *AuthService) Register(input RegisterInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" ||
		strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.LastName) == "" {
		return "", ErrAllFieldsRequired
	}
	if !validEmail(email) {
		return "", ErrInvalidEmail
	}
	if !strongPassword(input.Password) {
		return "", ErrWeakPassword
	}

	// Uniqueness spans hidden rows too: soft-delete never releases a
	// username or email.
	if taken, err := s.userRepo.UsernameTaken(username, ""); err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return "", ErrUsernameTaken
	}
	if taken, err := s.userRepo.EmailTaken(email, ""); err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		return "", ErrEmailTaken
	}

	id, err := utils.NewUniqueID(s.userRepo.ExistsByID)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       id,
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(input.Name),
		LastName: strings.TrimSpace(input.LastName),
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokens.Issue(user.ID, user.Username)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// Login verifies credentials and returns a signed bearer token. The
// username and email must both belong to the same account.
func (s *AuthService) Login(input LoginInput) (string, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return "", ErrAllFieldsRequired
	}
	if !validEmail(input.Email) {
		return "", ErrInvalidEmail
	}

	user, err := s.userRepo.FindByUsernameAndEmail(input.Username, input.Email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrLoginNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if user.Hidden {
		return "", ErrAccountDeleted
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	return s.tokens.Issue(user.ID, user.Username)
}

// Resolve loads the account behind a verified token claim. A hidden
// account is reported as deleted, not as missing, so a validly signed
// token issued before deletion cannot operate on the account.
func (s *AuthService) Resolve(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.Hidden {
		return nil, ErrAccountDeleted
	}

	return user, nil
}

// UpdateInput is the account patch: nil fields keep their current value.
type UpdateInput struct {
	Username *string
	Email    *string
	Name     *string
	LastName *string
	Password *string
}

func (in UpdateInput) empty() bool {
	return in.Username == nil && in.Email == nil && in.Name == nil &&
		in.LastName == nil && in.Password == nil
}

// UpdateDetails applies a partial profile update to an already
// resolved account.
func (s *AuthService) UpdateDetails(user *models.User, input UpdateInput) error {
	if input.empty() {
		return ErrNoUpdateFields
	}

	if input.Email != nil && !validEmail(*input.Email) {
		return ErrInvalidEmail
	}
	if input.Password != nil && !strongPassword(*input.Password) {
		return ErrWeakPassword
	}

	if input.Username != nil {
		if taken, err := s.userRepo.UsernameTaken(*input.Username, user.ID); err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		} else if taken {
			return ErrUsernameTaken
		}
		user.Username = *input.Username
	}
	if input.Email != nil {
		if taken, err := s.userRepo.EmailTaken(*input.Email, user.ID); err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		} else if taken {
			return ErrEmailTaken
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// HideAccount soft-deletes an account. The row is retained; only the
// hidden flag flips.
func (s *AuthService) HideAccount(user *models.User) error {
	user.Hidden = true
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to hide user: %w", err)
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// strongPassword enforces the registration password policy: at least
// eight characters with an uppercase letter, a lowercase letter, and a
// special character.
func strongPassword(password string) bool {
	if len(password) < constants.MinPasswordLength {
		return false
	}
	var upper, lower, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	return upper && lower && special
}
