package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LiteBots/VelorieMarket/domain"
)

// JWTServiceImpl implements domain.TokenService. Admin tokens and user
// tokens share the signing key but carry different claim sets; an admin
// token is only minted by the OTP verify path.
type JWTServiceImpl struct {
	secretKey     []byte
	issuer        string
	userTokenTTL  time.Duration
	adminTokenTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, userTTL, adminTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		userTokenTTL:  userTTL,
		adminTokenTTL: adminTTL,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GenerateAdminToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAdminToken(recipientID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"recipient_id": recipientID,
		"role":         "admin",
		"iss":          j.issuer,
		"iat":          now.Unix(),
		"exp":          now.Add(j.adminTokenTTL).Unix(),
		"jti":          j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateAdminToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAdminToken(tokenString string) (*domain.AdminClaims, error) {
	claims, err := j.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	recipientID, ok := claims["recipient_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok || role != "admin" {
		return nil, domain.ErrTokenInvalid
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AdminClaims{
		RecipientID: recipientID,
		Role:        role,
		IssuedAt:    int64(iat),
		ExpiresAt:   int64(exp),
	}, nil
}

// GenerateUserToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateUserToken(userID uint, role string, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"session_id": sessionID,
		"iss":        j.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(j.userTokenTTL).Unix(),
		"jti":        j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateUserToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateUserToken(tokenString string) (*domain.TokenClaims, error) {
	claims, err := j.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		Role:      role,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if sessionID, ok := claims["session_id"].(string); ok {
		tokenClaims.SessionID = sessionID
	}

	return tokenClaims, nil
}

// parseToken validates signature and shape and returns the raw claims
func (j *JWTServiceImpl) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return claims, nil
}
