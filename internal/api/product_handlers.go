package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type productView struct {
	ID            string  `json:"id"`
	Name          string  `json:"Name"`
	Category      string  `json:"Category"`
	Image         string  `json:"image"`
	OriginalPrice float64 `json:"OriginalPrice"`
	SellingPrice  float64 `json:"SellingPrice"`
}

func shapeProduct(p models.Product) productView {
	return productView{
		ID:            p.ID.Hex(),
		Name:          p.Name,
		Category:      p.Category,
		Image:         p.Image,
		OriginalPrice: p.OriginalPrice,
		SellingPrice:  p.SellingPrice,
	}
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.products.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch products"})
		return
	}
	shaped := make([]productView, 0, len(products))
	for _, p := range products {
		shaped = append(shaped, shapeProduct(p))
	}
	c.JSON(200, shaped)
}

func (s *Server) createProduct(c *gin.Context) {
	var req struct {
		Name          string   `json:"Name"`
		Category      string   `json:"Category"`
		Image         string   `json:"image"`
		OriginalPrice *float64 `json:"OriginalPrice"`
		SellingPrice  *float64 `json:"SellingPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if req.Name == "" || req.Category == "" || req.Image == "" ||
		req.OriginalPrice == nil || req.SellingPrice == nil {
		c.JSON(400, gin.H{"error": "Missing required fields"})
		return
	}

	now := time.Now()
	product := &models.Product{
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Image:         strings.TrimSpace(req.Image),
		OriginalPrice: *req.OriginalPrice,
		SellingPrice:  *req.SellingPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.products.Insert(c.Request.Context(), product); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"message": "Product created successfully",
		"product": shapeProduct(*product),
	})
}
