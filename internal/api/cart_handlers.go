package api

import "github.com/gin-gonic/gin"

func (s *Server) getCart(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	items, err := s.carts.Get(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Error fetching cart")
		return
	}
	c.JSON(200, gin.H{"items": items})
}

func (s *Server) addToCart(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "invalid input"})
		return
	}

	items, err := s.carts.Add(c.Request.Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err, "Error adding to cart")
		return
	}
	c.JSON(200, gin.H{"message": "Product added to cart", "items": items})
}

func (s *Server) updateCartItem(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req struct {
		// Written verbatim: zero and negative values are accepted here even
		// though add coerces to a minimum of 1.
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "invalid input"})
		return
	}

	items, err := s.carts.UpdateQuantity(c.Request.Context(), uid, c.Param("id"), req.Quantity)
	if err != nil {
		respondServiceError(c, err, "Error updating cart item")
		return
	}
	c.JSON(200, gin.H{"message": "Cart item updated", "cart": items})
}

func (s *Server) deleteCartItem(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	items, err := s.carts.Remove(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Error removing product from cart")
		return
	}
	c.JSON(200, gin.H{"message": "Product removed from cart", "cart": items})
}
