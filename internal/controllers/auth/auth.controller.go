package authController

import (
	"context"
	"errors"
	"time"

	"resonate/config"
	. "resonate/internal/models"
	"resonate/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// the response does not reveal which half failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	userRepo repositories.UserRepository
	config   config.Config
	db       *gorm.DB
	log      logger.Logger
}

type AuthControllerInterface interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expiresIn"`
	User      UserProfile `json:"user"`
}

func New(
	repos repositories.Repository,
	config config.Config,
	db *gorm.DB,
) AuthControllerInterface {
	return &AuthController{
		userRepo: repos.User,
		config:   config,
		db:       db,
		log:      logger.New("authController"),
	}
}

func (c *AuthController) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	log := c.log.Function("Login")

	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := c.userRepo.GetByUsername(ctx, c.db, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, log.Err("failed to look up user", err, "username", req.Username)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		return nil, ErrInvalidCredentials
	}

	return c.issueToken(user)
}

func (c *AuthController) Register(
	ctx context.Context,
	req RegisterRequest,
) (*LoginResponse, error) {
	log := c.log.Function("Register")

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("username, email, and password are required")
	}

	role := UserRole(req.Role)
	if req.Role == "" {
		role = RoleListener
	}
	if !role.IsValid() || role == RoleAdmin {
		return nil, errors.New("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}
	if err := c.userRepo.Create(ctx, c.db, user); err != nil {
		return nil, log.Err("failed to create user", err, "username", req.Username)
	}

	log.Info("registered user", "userID", user.ID, "role", user.Role)

	return c.issueToken(user)
}

func (c *AuthController) issueToken(user *User) (*LoginResponse, error) {
	log := c.log.Function("issueToken")

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.config.JWTSecret))
	if err != nil {
		return nil, log.Err("failed to sign token", err, "userID", user.ID)
	}

	return &LoginResponse{
		Token:     signed,
		ExpiresIn: int64(tokenLifetime.Seconds()),
		User:      user.ToProfile(),
	}, nil
}
