package services

import (
	"database/sql"
	"errors"
	"time"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users     repositories.UserRepository
	JWTSecret []byte
}

type RegisterInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account. A duplicate email is a conflict and
// must leave the existing row untouched, so existence is checked before
// any insert; the unique index on email backs this up against races.
func (s AuthService) Register(in RegisterInput) (domain.User, string, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" {
		return domain.User{}, "", domain.ValidationError{Msg: "email, password and first name are required"}
	}

	exists, err := s.Users.EmailExists(in.Email)
	if err != nil {
		return domain.User{}, "", err
	}
	if exists {
		return domain.User{}, "", domain.ConflictError{Resource: "user", Msg: "email is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	u := domain.User{
		Email:      in.Email,
		FirstName:  in.FirstName,
		MiddleName: in.MiddleName,
		LastName:   in.LastName,
		Role:       RoleEncoder,
	}
	id, err := s.Users.Create(u, string(hash))
	if err != nil {
		return domain.User{}, "", err
	}
	u.ID = id

	token, err := s.tokenFor(u)
	return u, token, err
}

// Login checks credentials and issues a JWT.
func (s AuthService) Login(in LoginInput) (domain.User, string, error) {
	u, hash, err := s.Users.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, "", domain.ValidationError{Msg: "email or password is incorrect"}
		}
		return domain.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)); err != nil {
		return domain.User{}, "", domain.ValidationError{Msg: "email or password is incorrect"}
	}

	token, err := s.tokenFor(u)
	return u, token, err
}

// Me resolves the full account behind an authenticated identity.
func (s AuthService) Me(actor domain.Identity) (domain.User, error) {
	u, err := s.Users.GetByID(actor.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// DeleteUser removes an account. Admin only, and never the actor's own
// account so the system cannot lose its last administrator.
func (s AuthService) DeleteUser(actor domain.Identity, id int64) error {
	if err := RequireAccess(actor, "user", ActionDelete); err != nil {
		return err
	}
	if actor.ID == id {
		return domain.ValidationError{Field: "id", Msg: "cannot delete your own account"}
	}
	err := s.Users.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "user"}
	}
	return err
}

func (s AuthService) tokenFor(u domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    u.ID,
		"first_name": u.FirstName,
		"role":       u.Role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.JWTSecret)
}
