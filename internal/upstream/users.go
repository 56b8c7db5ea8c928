package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const usersBase = "/api/v1/users/admin-users/"

// UsersClient - ресурс /users/admin-users/
type UsersClient struct {
	c *Client
}

func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{c: c}
}

func (u *UsersClient) List(ctx context.Context, token string, params ListParams) (listview.Page[models.AdminUser], error) {
	return getList[models.AdminUser](ctx, u.c, token, usersBase, params)
}

func (u *UsersClient) Stats(ctx context.Context, token string) (models.UserStats, error) {
	var stats models.UserStats
	err := u.c.get(ctx, token, usersBase+"stats/", nil, &stats)
	return stats, err
}

func (u *UsersClient) Get(ctx context.Context, token, id string) (models.AdminUser, error) {
	var user models.AdminUser
	err := u.c.get(ctx, token, usersBase+id+"/", nil, &user)
	return user, err
}

// ToggleActive переключает is_active и возвращает обновленную запись
func (u *UsersClient) ToggleActive(ctx context.Context, token, id string) (models.AdminUser, error) {
	var user models.AdminUser
	err := u.c.post(ctx, token, usersBase+id+"/toggle-active/", nil, &user)
	return user, err
}

// ToggleVerified переключает is_verified и возвращает обновленную запись
func (u *UsersClient) ToggleVerified(ctx context.Context, token, id string) (models.AdminUser, error) {
	var user models.AdminUser
	err := u.c.post(ctx, token, usersBase+id+"/toggle-verified/", nil, &user)
	return user, err
}

func (u *UsersClient) Delete(ctx context.Context, token, id string) error {
	return u.c.delete(ctx, token, usersBase+id+"/")
}
