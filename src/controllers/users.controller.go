package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"styledecor/src/common"
	"styledecor/src/models"
	"styledecor/src/types"

	"github.com/gin-gonic/gin"
)

// UsersUpsert registers the verified caller. The second return reports whether
// a new row was created.
func UsersUpsert(ctx *gin.Context) (user *models.User, created bool, status int, err error) {
	var body types.UpsertUserRequestBody
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, false, http.StatusBadRequest, err
		}
	}
	email := ctx.GetString("email")
	uid := ctx.GetString("uid")
	user, created, err = common.UpsertUser(ctx, email, uid, &body)
	if err != nil {
		log.Printf("Error registering user %s: %s\n", email, err.Error())
		return nil, false, http.StatusInternalServerError, err
	}
	if created {
		return user, true, http.StatusCreated, nil
	}
	return user, false, http.StatusOK, nil
}

func UsersGetRole(ctx *gin.Context) (role types.Role, status int, err error) {
	var params types.EmailRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		return "", http.StatusBadRequest, err
	}
	role, err = common.GetUserRole(ctx, params.Email)
	if err != nil {
		log.Printf("Error retrieving role for %s: %s\n", params.Email, err.Error())
		return "", http.StatusInternalServerError, err
	}
	return role, http.StatusOK, nil
}

func UsersUpdateRole(ctx *gin.Context) (result *types.UpdateResult, status int, err error) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		return nil, http.StatusBadRequest, err
	}
	var body types.UpdateRoleRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	result, err = common.UpdateUserRole(ctx, params.ID, types.Role(body.Role))
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		return nil, http.StatusNotFound, err
	case errors.Is(err, common.ErrInvalidRole):
		return nil, http.StatusBadRequest, err
	case err != nil:
		log.Printf("Error updating role for user [%d]: %s\n", params.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return result, http.StatusOK, nil
}
