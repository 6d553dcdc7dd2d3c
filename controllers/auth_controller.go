package controllers

import (
	"net/http"
	"time"

	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/utils"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type AuthController struct {
	Secret string
	TTL    time.Duration
}

func NewAuthController(secret string, ttl time.Duration) *AuthController {
	return &AuthController{Secret: secret, TTL: ttl}
}

// POST /jwt
func (a *AuthController) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := utils.GenerateToken(utils.NormalizeEmail(req.Email), req.Name, a.Secret, a.TTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
