package controllers

import (
	"net/http"
	"time"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/services"
	"github.com/AHMEDNABIB/react-reasturant-server/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type RecordPaymentRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	TransactionID string   `json:"transactionId" binding:"required"`
	Status        string   `json:"status"`
	CartItems     []string `json:"cartItems" binding:"required"`
	MenuItems     []string `json:"menuItems"`
}

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /create-payment-intent
func (p *PaymentController) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	secret, err := p.Payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// POST /payments — บันทึก payment แล้วเคลียร์ตะกร้า
func (p *PaymentController) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	email := utils.NormalizeEmail(req.Email)
	if email != utils.CurrentEmail(c) {
		resp.Forbidden(c)
		return
	}

	cartIDs := make([]primitive.ObjectID, 0, len(req.CartItems))
	for _, hex := range req.CartItems {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			resp.BadRequest(c, "invalid id")
			return
		}
		cartIDs = append(cartIDs, id)
	}

	payment := &entity.Payment{
		Email:         email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          time.Now(),
		Status:        req.Status,
		CartItems:     req.CartItems,
		MenuItems:     req.MenuItems,
	}

	insertedID, deleted, err := p.Payments.Record(c.Request.Context(), payment, cartIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentResult": gin.H{"insertedId": insertedID.Hex()},
		"deleteResult":  gin.H{"deletedCount": deleted},
	})
}
