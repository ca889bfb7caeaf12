package main

import (
	"net/http"
	"styledecor/src/controllers"
	"styledecor/src/middlewares"

	"github.com/gin-gonic/gin"
)

func decoratorHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/decorators", func(ctx *gin.Context) {
			decorator, status, err := controllers.DecoratorsApply(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"message": "Failed to submit application", "error": err.Error()})
				return
			}
			ctx.JSON(status, decorator)
		}).
		GET("/decorators",
			middlewares.Authorize(isAdmin()),
			func(ctx *gin.Context) {
				decorators, status, err := controllers.DecoratorsList(ctx)
				if err != nil {
					ctx.JSON(status, gin.H{"message": "Failed to load decorators", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, decorators)
			}).
		PATCH("/decorators/:id/status",
			middlewares.Authorize(isAdmin()),
			func(ctx *gin.Context) {
				decorator, status, err := controllers.DecoratorsDecide(ctx)
				if err != nil {
					ctx.JSON(status, gin.H{"message": "Failed to update application", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, decorator)
			})
	return g
}
