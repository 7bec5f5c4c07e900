package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// UploadToken is a validated presigned upload grant.
type UploadToken struct {
	TokenID   string
	ExpiresAt time.Time
}

// URLSignerService generates and validates single-use presigned upload
// tokens, so the admin can push photos from a phone without a cookie
// session on that device.
type URLSignerService struct {
	secretKey []byte
	redis     *redis.Client
}

func NewURLSignerService(secretKey []byte, redis *redis.Client) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		redis:     redis,
	}
}

// GenerateUploadToken signs a short-lived HMAC token granting one upload.
func (s *URLSignerService) GenerateUploadToken(ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()

	claims := jwt.MapClaims{
		"purpose": "upload",
		"jti":     tokenID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateUploadToken validates a presigned upload token
func (s *URLSignerService) ValidateUploadToken(ctx context.Context, tokenString string) (*UploadToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	purpose, ok := (*claims)["purpose"].(string)
	if !ok || purpose != "upload" {
		return nil, errors.New("wrong token purpose")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	used, err := s.isTokenUsed(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token usage: %w", err)
	}
	if used {
		return nil, errors.New("token already used")
	}

	return &UploadToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// MarkTokenAsUsed enforces single use of a token.
func (s *URLSignerService) MarkTokenAsUsed(ctx context.Context, tokenID string) error {
	ttl := 15 * time.Minute

	if err := s.redis.Set(ctx, "used_token:"+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark token as used: %w", err)
	}
	return nil
}

func (s *URLSignerService) isTokenUsed(ctx context.Context, tokenID string) (bool, error) {
	result, err := s.redis.Get(ctx, "used_token:"+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token usage: %w", err)
	}
	return result == "1", nil
}
