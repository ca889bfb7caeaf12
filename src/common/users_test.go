package common

import (
	"context"
	"styledecor/src/db/dbtest"
	"styledecor/src/models"
	"styledecor/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUser(t *testing.T) {
	dbtest.Open(t)
	ctx := context.Background()

	user, created, err := UpsertUser(ctx, "ana@example.com", "uid-ana", &types.UpsertUserRequestBody{Name: "Ana"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, types.ROLE_USER, user.Role)

	again, created, err := UpsertUser(ctx, "ana@example.com", "uid-ana", &types.UpsertUserRequestBody{Name: "Renamed"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Ana", again.Name)

	users, err := ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRoles(t *testing.T) {
	dbtest.Open(t)
	ctx := context.Background()

	role, err := GetUserRole(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, types.ROLE_USER, role)

	user, _, err := UpsertUser(ctx, "ana@example.com", "uid-ana", &types.UpsertUserRequestBody{})
	require.NoError(t, err)

	result, err := UpdateUserRole(ctx, user.ID, types.ROLE_ADMIN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	role, err = GetUserRole(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, types.ROLE_ADMIN, role)

	_, err = UpdateUserRole(ctx, user.ID, types.Role("owner"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = UpdateUserRole(ctx, user.ID+100, types.ROLE_DECORATOR)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDecoratorOnboarding(t *testing.T) {
	gdb := dbtest.Open(t)
	ctx := context.Background()

	_, _, err := UpsertUser(ctx, "dee@example.com", "uid-dee", &types.UpsertUserRequestBody{Name: "Dee"})
	require.NoError(t, err)

	app, err := ApplyAsDecorator(ctx, "dee@example.com", &types.CreateDecoratorRequestBody{
		Name:        "Dee Décor Studio",
		Specialties: []string{"wedding", "floral"},
		Experience:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, types.DECORATOR_PENDING, app.Status)
	assert.Regexp(t, `^dee-decor-studio-\d+$`, app.Slug)

	_, err = ApplyAsDecorator(ctx, "dee@example.com", &types.CreateDecoratorRequestBody{Name: "Again"})
	assert.ErrorIs(t, err, ErrDecoratorExists)

	pending, err := ListDecorators(ctx, types.DECORATOR_PENDING)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	approved, err := DecideDecorator(ctx, app.ID, types.DECORATOR_APPROVED)
	require.NoError(t, err)
	assert.Equal(t, types.DECORATOR_APPROVED, approved.Status)

	var user models.User
	require.NoError(t, gdb.Where("email = ?", "dee@example.com").First(&user).Error)
	assert.Equal(t, types.ROLE_DECORATOR, user.Role)

	_, err = DecideDecorator(ctx, app.ID, types.DECORATOR_REJECTED)
	assert.ErrorIs(t, err, ErrDecoratorDecided)

	_, err = DecideDecorator(ctx, app.ID+50, types.DECORATOR_APPROVED)
	assert.ErrorIs(t, err, ErrDecoratorNotFound)

	pending, err = ListDecorators(ctx, types.DECORATOR_PENDING)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := ListDecorators(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRejectedDecoratorKeepsUserRole(t *testing.T) {
	gdb := dbtest.Open(t)
	ctx := context.Background()

	_, _, err := UpsertUser(ctx, "eve@example.com", "uid-eve", &types.UpsertUserRequestBody{})
	require.NoError(t, err)
	app, err := ApplyAsDecorator(ctx, "eve@example.com", &types.CreateDecoratorRequestBody{Name: "Eve"})
	require.NoError(t, err)

	_, err = DecideDecorator(ctx, app.ID, types.DECORATOR_REJECTED)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, gdb.Where("email = ?", "eve@example.com").First(&user).Error)
	assert.Equal(t, types.ROLE_USER, user.Role)
}
