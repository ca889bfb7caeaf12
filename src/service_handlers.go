package main

import (
	"errors"
	"log"
	"net/http"
	"styledecor/src/common"
	"styledecor/src/middlewares"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
)

func serviceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	adminOnly := middlewares.Authorize(middlewares.HasRole(types.ROLE_ADMIN))
	g.
		GET("/services", func(ctx *gin.Context) {
			var filters types.ServiceQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query", "error": err.Error()})
				return
			}
			page, err := common.QueryServices(ctx, &filters)
			if err != nil {
				if errors.Is(err, common.ErrInvalidFilter) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query", "error": err.Error()})
					return
				}
				log.Printf("Error loading services: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load services", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, page)
		}).
		GET("/categories", func(ctx *gin.Context) {
			categories, err := common.ListCategories(ctx)
			if err != nil {
				log.Printf("Error loading categories: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load categories", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, categories)
		}).
		GET("/services/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service id", "error": err.Error()})
				return
			}
			service, err := common.GetService(ctx, params.ID)
			if err != nil {
				if errors.Is(err, common.ErrServiceNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
					return
				}
				log.Printf("Error loading service [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load service", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, service)
		}).
		POST("/services", middlewares.VerifyIdToken, adminOnly, func(ctx *gin.Context) {
			var body types.CreateServiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service", "error": err.Error()})
				return
			}
			service, err := common.CreateService(ctx, &body)
			if err != nil {
				log.Printf("Error creating service: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create service", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, service)
		})

	g.
		GET("/packages", func(ctx *gin.Context) {
			packages, err := common.ListPackages(ctx)
			if err != nil {
				log.Printf("Error loading packages: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load packages", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, packages)
		}).
		POST("/packages", middlewares.VerifyIdToken, adminOnly, func(ctx *gin.Context) {
			var body types.CreatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid package", "error": err.Error()})
				return
			}
			result, err := common.CreatePackage(ctx, &body)
			if err != nil {
				log.Printf("Error creating package: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create package", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, result)
		})
	return g
}
