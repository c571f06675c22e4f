package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"appboard_backend/internals/configs"
	userModel "appboard_backend/internals/features/users/user/model"
	helper "appboard_backend/internals/helpers"
)

const (
	accessTTLDefault = 24 * time.Hour
	bcryptCost       = 12
	minPasswordLen   = 8
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

/* ==========================
   Register / Login
========================== */

func (s *AuthService) Register(email, password string, name *string) (*userModel.UserModel, error) {
	user := &userModel.UserModel{
		Email:    email,
		Name:     name,
		Password: password,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.DB.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fiber.NewError(fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	var user userModel.UserModel
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := s.issueAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

/* ==========================
   Change password
========================== */

func (s *AuthService) ChangePassword(userID string, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Password lama dan baru wajib diisi")
	}
	if len(newPassword) < minPasswordLen {
		return fiber.NewError(fiber.StatusBadRequest, "Password baru minimal 8 karakter")
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	return s.DB.Model(&user).Update("password", string(hashed)).Error
}

/* ==========================
   Token
========================== */

func (s *AuthService) issueAccessToken(user *userModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
