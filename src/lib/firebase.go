package lib

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Identity is the verified caller behind a bearer token.
type Identity struct {
	UID   string
	Email string
}

type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

var innerApp *firebase.App
var innerAuth *auth.Client
var identityVerifier IdentityVerifier

func getOpts() option.ClientOption {
	secretsPath := os.Getenv("SECRETS_DIR")
	return option.WithCredentialsFile(path.Join(secretsPath, "admin-sdk-credentials.json"))
}

func GetFirebaseAuth() (*auth.Client, error) {
	if innerAuth != nil {
		return innerAuth, nil
	}
	if innerApp == nil {
		app, err := firebase.NewApp(context.Background(), nil, getOpts())
		if err != nil {
			log.Printf("error initializing app: %s\n", err.Error())
			return nil, err
		}
		innerApp = app
	}

	client, err := innerApp.Auth(context.Background())
	if err != nil {
		log.Printf("error initializing Firebase Auth: %s\n", err.Error())
		return nil, err
	}
	innerAuth = client

	return client, nil
}

// GetIdentityVerifier returns Firebase verification, or HS256 tokens signed with
// JWT_SECRET when API_ENV is local.
func GetIdentityVerifier() (IdentityVerifier, error) {
	if identityVerifier != nil {
		return identityVerifier, nil
	}
	if os.Getenv("API_ENV") == "local" {
		identityVerifier = NewJWTVerifier(os.Getenv("JWT_SECRET"))
		return identityVerifier, nil
	}
	client, err := GetFirebaseAuth()
	if err != nil {
		return nil, err
	}
	identityVerifier = &FirebaseVerifier{client: client}
	return identityVerifier, nil
}

func NewIdentityVerifier(v IdentityVerifier) {
	identityVerifier = v
}

type FirebaseVerifier struct {
	client *auth.Client
}

func (f *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("token carries no email claim")
	}
	return &Identity{UID: token.UID, Email: email}, nil
}
