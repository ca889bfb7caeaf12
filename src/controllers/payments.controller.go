package controllers

import (
	"errors"
	"log"
	"net/http"
	"styledecor/src/common"
	"styledecor/src/middlewares"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
)

func PaymentsCheckout(ctx *gin.Context) (url string, status int, err error) {
	var body types.CreateCheckoutRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return "", http.StatusBadRequest, err
	}
	owner := middlewares.OwnerOf(func(*gin.Context) string { return body.CustomerEmail })
	if !middlewares.Allowed(ctx, middlewares.AnyOf(owner, middlewares.HasRole(types.ROLE_ADMIN))) {
		return "", http.StatusForbidden, ErrForbidden
	}
	url, err = common.InitiateCheckout(ctx, &body)
	if err != nil {
		log.Printf("Error on checkout: %s\n", err.Error())
		return "", http.StatusInternalServerError, err
	}
	return url, http.StatusOK, nil
}

func PaymentsConfirm(ctx *gin.Context) (result *common.ConfirmationResult, status int, err error) {
	var query types.PaymentSuccessQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, http.StatusBadRequest, err
	}
	result, err = common.ConfirmPayment(ctx, query.SessionID)
	switch {
	case errors.Is(err, common.ErrPaymentInProgress):
		return nil, http.StatusConflict, err
	case errors.Is(err, common.ErrInvalidMetadata):
		return nil, http.StatusBadRequest, err
	case err != nil:
		log.Printf("Error confirming payment for session %s: %s\n", query.SessionID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return result, http.StatusOK, nil
}
