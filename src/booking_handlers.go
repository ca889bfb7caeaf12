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

func isAdmin() middlewares.Predicate {
	return middlewares.HasRole(types.ROLE_ADMIN)
}

// ownerOrAdmin allows admins and the caller whose email matches owner.
func ownerOrAdmin(owner string) middlewares.Predicate {
	return middlewares.AnyOf(isAdmin(), middlewares.OwnerOf(func(*gin.Context) string { return owner }))
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking", "error": err.Error()})
				return
			}
			if !middlewares.Allowed(ctx, ownerOrAdmin(body.CustomerEmail)) {
				ctx.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
			result, err := common.CreateBooking(ctx, &body)
			if err != nil {
				if errors.Is(err, common.ErrInvalidBooking) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking", "error": err.Error()})
					return
				}
				log.Printf("Error creating booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, result)
		}).
		GET("/bookings/:email",
			middlewares.Authorize(middlewares.AnyOf(isAdmin(), middlewares.OwnerOf(middlewares.ParamEmail("email")))),
			func(ctx *gin.Context) {
				var params types.EmailRequestParams
				if err := ctx.ShouldBindUri(&params); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email", "error": err.Error()})
					return
				}
				bookings, err := common.ListBookingsByEmail(ctx, params.Email)
				if err != nil {
					log.Printf("Error loading bookings for %s: %s\n", params.Email, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load bookings", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, bookings)
			}).
		DELETE("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id", "error": err.Error()})
				return
			}
			booking, err := common.GetBooking(ctx, params.ID)
			if err != nil {
				if errors.Is(err, common.ErrBookingNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
					return
				}
				log.Printf("Error loading booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load booking", "error": err.Error()})
				return
			}
			if !middlewares.Allowed(ctx, ownerOrAdmin(booking.CustomerEmail)) {
				ctx.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
			result, err := common.DeleteBooking(ctx, params.ID)
			switch {
			case errors.Is(err, common.ErrBookingNotFound):
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
				return
			case errors.Is(err, common.ErrBookingPaid):
				ctx.JSON(http.StatusConflict, gin.H{"message": "Paid bookings cannot be cancelled"})
				return
			case err != nil:
				log.Printf("Error deleting booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete booking", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, result)
		})
	return g
}
