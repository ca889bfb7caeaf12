package controllers

import (
	"errors"
	"log"
	"net/http"
	"styledecor/src/common"
	"styledecor/src/models"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
)

func DecoratorsApply(ctx *gin.Context) (decorator *models.Decorator, status int, err error) {
	var body types.CreateDecoratorRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := ctx.GetString("email")
	decorator, err = common.ApplyAsDecorator(ctx, email, &body)
	if err != nil {
		if errors.Is(err, common.ErrDecoratorExists) {
			return nil, http.StatusConflict, err
		}
		log.Printf("Error submitting decorator application for %s: %s\n", email, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return decorator, http.StatusCreated, nil
}

func DecoratorsList(ctx *gin.Context) (decorators []models.Decorator, status int, err error) {
	var query types.DecoratorsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, http.StatusBadRequest, err
	}
	decorators, err = common.ListDecorators(ctx, types.DecoratorStatus(query.Status))
	if err != nil {
		log.Printf("Error listing decorators: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return decorators, http.StatusOK, nil
}

func DecoratorsDecide(ctx *gin.Context) (decorator *models.Decorator, status int, err error) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		return nil, http.StatusBadRequest, err
	}
	var body types.UpdateDecoratorStatusRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	decorator, err = common.DecideDecorator(ctx, params.ID, types.DecoratorStatus(body.Status))
	switch {
	case errors.Is(err, common.ErrDecoratorNotFound):
		return nil, http.StatusNotFound, err
	case errors.Is(err, common.ErrDecoratorDecided):
		return nil, http.StatusConflict, err
	case err != nil:
		log.Printf("Error updating decorator [%d]: %s\n", params.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return decorator, http.StatusOK, nil
}
