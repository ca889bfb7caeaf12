package lib

import (
	"context"
	"errors"
	"styledecor/src/types"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (j *JWTVerifier) VerifyIDToken(_ context.Context, idToken string) (*Identity, error) {
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(idToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		return nil, errors.New("token carries no email claim")
	}
	return &Identity{UID: claims.UID, Email: claims.Email}, nil
}

// Issue signs a token for local development and tests.
func (j *JWTVerifier) Issue(email, uid string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Email: email,
		UID:   uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}
