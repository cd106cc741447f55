package controllers

import (
	"context"
	"errors"
	"time"

	"inventory/src/models"
	"inventory/src/repositories"
	"inventory/src/schemas"
	"inventory/src/utils"
)

func (c *Controller) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return c.Repos.Users.GetAll(ctx)
}

func (c *Controller) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := c.Repos.Users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("user not found")
	}
	return user, err
}

func (c *Controller) CreateUser(ctx context.Context, req *schemas.CreateUserRequest) (*models.User, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}
	if _, err := c.Repos.Divisions.GetByID(ctx, req.DivisionID); err != nil {
		return nil, utils.UnprocessableEntity("division not found: " + req.DivisionID)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:         newID("user"),
		Name:       req.Name,
		Email:      req.Email,
		DivisionID: req.DivisionID,
		Role:       models.UserRole(req.Role),
		Phone:      req.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.Repos.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Controller) UpdateUser(ctx context.Context, id string, req *schemas.UpdateUserRequest) (*models.User, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	user, err := c.Repos.Users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := c.Repos.Divisions.GetByID(ctx, req.DivisionID); err != nil {
		return nil, utils.UnprocessableEntity("division not found: " + req.DivisionID)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.DivisionID = req.DivisionID
	user.Role = models.UserRole(req.Role)
	user.Phone = req.Phone
	user.UpdatedAt = time.Now().UTC()

	if err := c.Repos.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Controller) DeleteUser(ctx context.Context, id string) error {
	err := c.Repos.Users.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("user not found")
	}
	return err
}
