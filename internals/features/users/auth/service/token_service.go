// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/configs"
	authModel "yugamki_backend/internals/features/users/auth/model"
	userModel "yugamki_backend/internals/features/users/user/model"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

// IssueAccessToken builds the short-lived HS256 access token carrying
// identity and role claims.
func IssueAccessToken(u *userModel.UserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID.String(),
		"email":    u.Email,
		"role":     u.Role,
		"yugam_id": u.YugamID,
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
}

func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw + configs.JWTRefreshSecret))
	return hex.EncodeToString(sum[:])
}

func StoreRefreshToken(db *gorm.DB, userID uuid.UUID, raw, userAgent, ip string, now time.Time) error {
	rec := authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     HashRefreshToken(raw),
		ExpiresAt: now.Add(RefreshTTL),
	}
	if userAgent != "" {
		rec.UserAgent = &userAgent
	}
	if ip != "" {
		rec.IP = &ip
	}
	return db.Create(&rec).Error
}

// RotateRefreshToken deletes the old hash row; returns gorm.ErrRecordNotFound
// semantics via RowsAffected so replayed tokens are rejected.
func RotateRefreshToken(db *gorm.DB, raw string) (bool, error) {
	res := db.Where("token = ?", HashRefreshToken(raw)).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ParseRefreshToken validates the refresh JWT and returns the subject.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

// BlacklistAccessToken revokes an access token until its natural expiry.
func BlacklistAccessToken(db *gorm.DB, raw string, now time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiresAt: now.Add(AccessTTL),
	}).Error
}

// CleanupExpiredTokens drops expired blacklist and refresh rows. Invoked from
// an admin maintenance endpoint.
func CleanupExpiredTokens(db *gorm.DB, now time.Time) (int64, error) {
	var total int64
	res := db.Where("expires_at < ?", now).Delete(&authModel.TokenBlacklistModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	total += res.RowsAffected
	res = db.Where("expires_at < ?", now).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return total, res.Error
	}
	total += res.RowsAffected
	return total, nil
}
