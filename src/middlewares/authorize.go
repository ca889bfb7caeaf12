package middlewares

import (
	"net/http"
	"strings"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
)

// Predicate decides whether the caller on ctx may proceed.
type Predicate func(ctx *gin.Context) bool

func Authenticated(ctx *gin.Context) bool {
	return ctx.GetString("email") != ""
}

func HasRole(roles ...types.Role) Predicate {
	return func(ctx *gin.Context) bool {
		role := types.Role(ctx.GetString("role"))
		for _, r := range roles {
			if role == r {
				return true
			}
		}
		return false
	}
}

// OwnerOf matches when the email returned by resource equals the caller's.
func OwnerOf(resource func(ctx *gin.Context) string) Predicate {
	return func(ctx *gin.Context) bool {
		email := ctx.GetString("email")
		return email != "" && strings.EqualFold(email, resource(ctx))
	}
}

func AnyOf(preds ...Predicate) Predicate {
	return func(ctx *gin.Context) bool {
		for _, p := range preds {
			if p(ctx) {
				return true
			}
		}
		return false
	}
}

func AllOf(preds ...Predicate) Predicate {
	return func(ctx *gin.Context) bool {
		for _, p := range preds {
			if !p(ctx) {
				return false
			}
		}
		return true
	}
}

// Allowed reports whether every predicate holds.
func Allowed(ctx *gin.Context, preds ...Predicate) bool {
	return AllOf(preds...)(ctx)
}

// Authorize runs after VerifyIdToken. It rejects anonymous callers with 401 and
// callers failing any predicate with 403.
func Authorize(preds ...Predicate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !Authenticated(ctx) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		if !Allowed(ctx, preds...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		ctx.Next()
	}
}

// ParamEmail reads the caller-owned email from a path parameter.
func ParamEmail(name string) func(ctx *gin.Context) string {
	return func(ctx *gin.Context) string {
		return ctx.Param(name)
	}
}

// QueryEmail reads the caller-owned email from a query parameter.
func QueryEmail(name string) func(ctx *gin.Context) string {
	return func(ctx *gin.Context) string {
		return ctx.Query(name)
	}
}
