package controllers

import (
	"net/http"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Image    string  `json:"image"`
}

type MenuController struct {
	Menu repository.MenuRepository
}

func NewMenuController(menu repository.MenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu
func (m *MenuController) List(c *gin.Context) {
	items, err := m.Menu.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /menu (admin)
func (m *MenuController) Add(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := m.Menu.Insert(c.Request.Context(), &entity.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Category: req.Category,
		Price:    req.Price,
		Image:    req.Image,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// DELETE /menu/:id (admin)
func (m *MenuController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	deleted, err := m.Menu.Delete(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
