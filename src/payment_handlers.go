package main

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"styledecor/src/common"
	"styledecor/src/controllers"
	"styledecor/src/lib"
	"styledecor/src/middlewares"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/create-checkout-session", func(ctx *gin.Context) {
			url, status, err := controllers.PaymentsCheckout(ctx)
			if errors.Is(err, controllers.ErrForbidden) {
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			if err != nil {
				ctx.JSON(status, gin.H{"message": "Failed to create checkout session", "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"url": url})
		}).
		PATCH("/payment-success", func(ctx *gin.Context) {
			result, status, err := controllers.PaymentsConfirm(ctx)
			if err != nil {
				if errors.Is(err, common.ErrPaymentInProgress) {
					ctx.JSON(status, gin.H{"message": "Payment confirmation in progress"})
					return
				}
				ctx.JSON(status, gin.H{"message": "Failed to confirm payment", "error": err.Error()})
				return
			}
			switch {
			case result.AlreadyExists:
				ctx.JSON(http.StatusOK, gin.H{
					"message":       "already exits",
					"transactionId": result.TransactionID,
					"trackingId":    result.TrackingID,
				})
			case !result.Success:
				ctx.JSON(http.StatusOK, gin.H{"success": false})
			default:
				ctx.JSON(http.StatusOK, gin.H{
					"success":       true,
					"modifyService": result.Modified,
					"trackingId":    result.TrackingID,
					"transactionId": result.TransactionID,
					"paymentInfo":   result.Payment,
				})
			}
		}).
		GET("/payments",
			middlewares.Authorize(middlewares.AnyOf(isAdmin(), middlewares.OwnerOf(middlewares.QueryEmail("email")))),
			func(ctx *gin.Context) {
				var query types.PaymentsQuery
				if err := ctx.ShouldBindQuery(&query); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email", "error": err.Error()})
					return
				}
				payments, err := common.ListPayments(ctx, query.Email)
				if err != nil {
					log.Printf("Error loading payments for %s: %s\n", query.Email, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load payments", "error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, payments)
			}).
		GET("/payments/:trackingId/qrcode", func(ctx *gin.Context) {
			var params types.TrackingRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tracking id", "error": err.Error()})
				return
			}
			payment, err := common.FindPaymentByTracking(ctx, params.TrackingID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
					return
				}
				log.Printf("Error loading payment %s: %s\n", params.TrackingID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load payment", "error": err.Error()})
				return
			}
			if !middlewares.Allowed(ctx, ownerOrAdmin(payment.CustomerEmail)) {
				ctx.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
			var buf bytes.Buffer
			if err := lib.WriteQRCode(&buf, payment.TrackingID); err != nil {
				log.Printf("Could not render qrcode for %s: %s\n", payment.TrackingID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to render qrcode", "error": err.Error()})
				return
			}
			ctx.Data(http.StatusOK, "image/jpeg", buf.Bytes())
		})
	return g
}
