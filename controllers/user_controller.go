package controllers

import (
	"errors"
	"net/http"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"
	"github.com/AHMEDNABIB/react-reasturant-server/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpsertUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type UserController struct {
	Users repository.UserRepository
}

func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{Users: users}
}

// GET /users (admin)
func (u *UserController) List(c *gin.Context) {
	users, err := u.Users.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/admin/:email — client ใช้เช็คว่าตัวเองเป็น admin ไหม
func (u *UserController) IsAdmin(c *gin.Context) {
	email := utils.NormalizeEmail(c.Param("email"))
	if email != utils.CurrentEmail(c) {
		resp.Forbidden(c)
		return
	}

	admin := false
	user, err := u.Users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		resp.ServerError(c, err)
		return
	}
	if user != nil {
		admin = user.IsAdmin()
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// POST /users — idempotent ต่อ email
func (u *UserController) Upsert(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	email := utils.NormalizeEmail(req.Email)

	ctx := c.Request.Context()
	if _, err := u.Users.FindByEmail(ctx, email); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		resp.ServerError(c, err)
		return
	}

	id, err := u.Users.Insert(ctx, &entity.User{Email: email, Name: req.Name})
	if err != nil {
		// แพ้ race กับ insert อื่น = มีอยู่แล้วเหมือนกัน
		if errors.Is(err, repository.ErrAlreadyExists) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// PATCH /users/admin/:id (admin)
func (u *UserController) Promote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	matched, modified, err := u.Users.Promote(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

// DELETE /users/:id (admin)
func (u *UserController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	deleted, err := u.Users.Delete(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
