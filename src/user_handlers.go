package main

import (
	"log"
	"net/http"
	"styledecor/src/common"
	"styledecor/src/controllers"
	"styledecor/src/middlewares"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/users", func(ctx *gin.Context) {
			user, created, status, err := controllers.UsersUpsert(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"message": "Failed to register user", "error": err.Error()})
				return
			}
			if !created {
				ctx.JSON(status, gin.H{"message": "user already exists", "data": user})
				return
			}
			ctx.JSON(status, gin.H{"acknowledged": true, "insertedId": user.ID, "data": user})
		}).
		GET("/users",
			middlewares.Authorize(isAdmin()),
			func(ctx *gin.Context) {
				users, err := common.ListUsers(ctx)
				if err != nil {
					log.Printf("Error loading users: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load users", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, users)
			}).
		GET("/users/:email/role",
			middlewares.Authorize(middlewares.AnyOf(isAdmin(), middlewares.OwnerOf(middlewares.ParamEmail("email")))),
			func(ctx *gin.Context) {
				role, status, err := controllers.UsersGetRole(ctx)
				if err != nil {
					ctx.JSON(status, gin.H{"message": "Failed to load role", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"role": role})
			}).
		PATCH("/users/:id/role",
			middlewares.Authorize(isAdmin()),
			func(ctx *gin.Context) {
				result, status, err := controllers.UsersUpdateRole(ctx)
				if err != nil {
					ctx.JSON(status, gin.H{"message": "Failed to update role", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, result)
			})
	return g
}
