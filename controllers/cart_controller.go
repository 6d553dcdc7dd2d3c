package controllers

import (
	"net/http"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"
	"github.com/AHMEDNABIB/react-reasturant-server/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddCartItemRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	MenuItemID string  `json:"menuItemId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

type CartController struct {
	Carts repository.CartRepository
}

func NewCartController(carts repository.CartRepository) *CartController {
	return &CartController{Carts: carts}
}

// GET /carts?email=
func (ct *CartController) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []entity.CartItem{})
		return
	}
	email = utils.NormalizeEmail(email)
	if email != utils.CurrentEmail(c) {
		resp.Forbidden(c)
		return
	}

	items, err := ct.Carts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /carts — เพิ่มได้เฉพาะตะกร้าตัวเอง
func (ct *CartController) Add(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	email := utils.NormalizeEmail(req.Email)
	if email != utils.CurrentEmail(c) {
		resp.Forbidden(c)
		return
	}

	id, err := ct.Carts.Insert(c.Request.Context(), &entity.CartItem{
		Email:      email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// DELETE /carts/:id — ลบได้เฉพาะของตัวเอง; id คนอื่นรายงาน 0 ไม่ error
func (ct *CartController) Remove(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	deleted, err := ct.Carts.DeleteOwned(c.Request.Context(), id, utils.CurrentEmail(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
