package controllers

import (
	"net/http"

	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Users    repository.UserRepository
	Menu     repository.MenuRepository
	Payments repository.PaymentRepository
}

func NewAdminController(users repository.UserRepository, menu repository.MenuRepository, payments repository.PaymentRepository) *AdminController {
	return &AdminController{Users: users, Menu: menu, Payments: payments}
}

// GET /admin-stats (admin) — ตัวเลขรวม ๆ สำหรับ dashboard
// counts เป็นค่าประมาณ ใช้แสดงผลเท่านั้น ไม่ใช่ตัวเลขบัญชี
func (ac *AdminController) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := ac.Users.Count(ctx)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	menuItems, err := ac.Menu.Count(ctx)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	orders, err := ac.Payments.Count(ctx)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	revenue, err := ac.Payments.TotalRevenue(ctx)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenue":   revenue,
	})
}
