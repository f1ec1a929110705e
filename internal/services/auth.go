package services

import (
	"errors"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService guards the admin surface. There is a single operator account:
// the username comes from the environment, the password hash lives in
// admin_config so that a password change survives restarts.
type AuthService struct {
	db            *gorm.DB
	jwtSecret     []byte
	adminUsername string
	adminPassword string
}

func NewAuthService(db *gorm.DB, jwtSecret, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		db:            db,
		jwtSecret:     []byte(jwtSecret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// SeedPasswordHash stores the bcrypt hash of the env password if admin_config
// has none yet. An existing hash (set through a password change) wins.
func (s *AuthService) SeedPasswordHash() error {
	var existing models.AdminConfig
	err := s.db.Where("key = ?", models.AdminPasswordHashKey).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Create(&models.AdminConfig{
		Key:   models.AdminPasswordHashKey,
		Value: string(hash),
	}).Error
}

func (s *AuthService) passwordHash() (string, error) {
	var cfg models.AdminConfig
	err := s.db.Where("key = ?", models.AdminPasswordHashKey).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return "", hashErr
		}
		return string(hash), nil
	}
	if err != nil {
		return "", err
	}
	return cfg.Value, nil
}

// VerifyCredentials checks a username/password pair. Used by both the login
// endpoint and Basic-auth admin requests.
func (s *AuthService) VerifyCredentials(username, password string) error {
	if username != s.adminUsername {
		return apperr.Unauthorized("Accès non autorisé")
	}
	hash, err := s.passwordHash()
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return apperr.Unauthorized("Accès non autorisé")
	}
	return nil
}

func (s *AuthService) Login(username, password string) (string, error) {
	if err := s.VerifyCredentials(username, password); err != nil {
		return "", err
	}
	return s.GenerateToken(username)
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.Unauthorized("Accès non autorisé")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.Unauthorized("Accès non autorisé")
	}

	username, ok := claims["sub"].(string)
	if !ok || username != s.adminUsername {
		return "", apperr.Unauthorized("Accès non autorisé")
	}
	return username, nil
}

func (s *AuthService) ChangePassword(currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperr.Validation("Mot de passe invalide.")
	}

	hash, err := s.passwordHash()
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(currentPassword)) != nil {
		return apperr.Unauthorized("Mot de passe actuel incorrect.")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}

	cfg := models.AdminConfig{Key: models.AdminPasswordHashKey, Value: string(newHash)}
	err = s.db.Save(&cfg).Error
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}
