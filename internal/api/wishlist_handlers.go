package api

import "github.com/gin-gonic/gin"

func (s *Server) getWishlist(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	items, err := s.wishlists.Get(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Error fetching wishlist")
		return
	}
	c.JSON(200, gin.H{"items": items})
}

func (s *Server) addToWishlist(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "invalid input"})
		return
	}

	items, alreadyPresent, err := s.wishlists.Add(c.Request.Context(), uid, req.ProductID)
	if err != nil {
		respondServiceError(c, err, "Error adding to wishlist")
		return
	}
	message := "Product added to wishlist"
	if alreadyPresent {
		message = "Already in wishlist"
	}
	c.JSON(200, gin.H{"message": message, "items": items})
}

func (s *Server) deleteWishlistItem(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	items, err := s.wishlists.Remove(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Error removing product from wishlist")
		return
	}
	c.JSON(200, gin.H{"message": "Product removed from wishlist", "items": items})
}
