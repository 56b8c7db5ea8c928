package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/config"
	"jobhub_admin/internal/models"
)

// Claims - полезная нагрузка админского JWT
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken разбирает и проверяет JWT. Истекший токен - отдельная
// ошибка с Kind=auth, чтобы UI мог отправить на повторный логин,
// а не показывать generic "fetch failed".
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// GenerateToken выдает JWT (используется тестами и dev-логином)
func GenerateToken(userID string, role models.UserRole) (string, error) {
	cfg := config.GetConfig()

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}
