package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeViewer = "viewer"

	ClaimType    = "type"
	ClaimStoreID = "store_id"

	// AnyStore in the store_id claim grants access to every store
	AnyStore = "*"
)

type Service interface {
	GenerateViewerToken(storeID string, ttl string) (token string, expiresAt int64, err error)
	ValidateViewerToken(tokenString string) (storeID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
	now       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:       time.Now,
	}
}

// GenerateViewerToken issues a read-only token for one store, or AnyStore
func (j *JWTService) GenerateViewerToken(storeID string, ttl string) (token string, expiresAt int64, err error) {
	if storeID == "" {
		return "", 0, errors.New("store id is required")
	}
	expDuration, err := time.ParseDuration(ttl)
	if err != nil {
		return "", 0, err
	}
	if expDuration <= 0 {
		return "", 0, errors.New("ttl must be positive")
	}
	now := j.now()
	expiresAt = now.Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimStoreID: storeID,
		ClaimType:    TokenTypeViewer,
		"iat":        now.Unix(),
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}

// ValidateViewerToken verifies signature, expiry and type, and returns the store claim
func (j *JWTService) ValidateViewerToken(tokenString string) (storeID string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get(ClaimType)
	if !ok || tokenType != TokenTypeViewer {
		return "", jwt.ErrInvalidJWT()
	}

	storeVal, ok := token.Get(ClaimStoreID)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}
	storeID, ok = storeVal.(string)
	if !ok || storeID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return storeID, nil
}
