package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/admins/model"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
)

const accessTokenTTL = 12 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthController(db *gorm.DB, jwtSecret string) *AuthController {
	return &AuthController{DB: db, JWTSecret: jwtSecret}
}

// Login: POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if body.Email == "" || body.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var admin model.AdminUserModel
	if err := ctrl.DB.Where("admin_email = ?", body.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   admin.AdminID.String(),
		"email": admin.AdminEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ctrl.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"expires_in":   int(accessTokenTTL.Seconds()),
		"admin": fiber.Map{
			"admin_id":        admin.AdminID,
			"admin_email":     admin.AdminEmail,
			"admin_full_name": admin.AdminFullName,
		},
	})
}

// Logout: POST /api/auth/logout — blacklists the presented token.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("jwt_token").(string)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	expiredAt := time.Now().Add(accessTokenTTL)
	if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := model.TokenBlacklistModel{Token: raw, ExpiredAt: expiredAt}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// a second logout with the same token is already revoked
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.JsonOK(c, "Logged out", nil)
		}
		log.Printf("[ERROR] blacklist insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}

	return helper.JsonOK(c, "Logged out", nil)
}

// ChangePassword: POST /api/a/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if len(body.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "New password must be at least 8 characters")
	}

	adminID, _ := c.Locals("admin_id").(string)
	if adminID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin model.AdminUserModel
	if err := ctrl.DB.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctrl.DB.Model(&admin).Update("admin_password", string(hash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

// IsTokenBlacklisted is plugged into the JWT middleware.
func IsTokenBlacklisted(db *gorm.DB) func(string) (bool, error) {
	return func(raw string) (bool, error) {
		var count int64
		err := db.Model(&model.TokenBlacklistModel{}).
			Where("token = ?", raw).
			Count(&count).Error
		return count > 0, err
	}
}
