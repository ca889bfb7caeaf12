package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"styledecor/src/db"
	"styledecor/src/lib"
	"styledecor/src/models"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
)

// VerifyIdToken authenticates the bearer token and stores the caller's email,
// uid and role on the request context. Callers with no user row get role user.
func VerifyIdToken(ctx *gin.Context) {
	bearerToken := ctx.GetHeader("Authorization")
	if bearerToken == "" {
		err := errors.New("missing authorization header")
		log.Printf("Check failed: %s\n", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	idToken, found := strings.CutPrefix(bearerToken, "Bearer ")
	if !found || strings.TrimSpace(idToken) == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	verifier, err := lib.GetIdentityVerifier()
	if err != nil {
		log.Printf("Error retrieving identity verifier: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	identity, err := verifier.VerifyIDToken(ctx, strings.TrimSpace(idToken))
	if err != nil {
		log.Printf("Failed to verify ID token: %s\n", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	role := types.ROLE_USER
	var users []models.User
	db := db.GetDb()
	if err := db.
		WithContext(ctx).
		Select("id", "role").
		Where(&models.User{Email: identity.Email}).
		Limit(1).
		Find(&users).
		Error; err != nil {
		log.Printf("Error loading role for %s: %s\n", identity.Email, err.Error())
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if len(users) > 0 {
		ctx.Set("id", users[0].ID)
		if users[0].Role != "" {
			role = users[0].Role
		}
	}
	ctx.Set("email", identity.Email)
	ctx.Set("uid", identity.UID)
	ctx.Set("role", string(role))
}
