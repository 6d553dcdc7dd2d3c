package controllers

import (
	"net/http"

	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews repository.ReviewRepository
}

func NewReviewController(reviews repository.ReviewRepository) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GET /reviews
func (r *ReviewController) List(c *gin.Context) {
	reviews, err := r.Reviews.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
