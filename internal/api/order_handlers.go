package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/auth"
)

func (s *Server) createOrder(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	order, err := s.orders.CreateFromCart(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Error creating order")
		return
	}

	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, gin.H{
			"name":     item.Name,
			"quantity": item.Quantity,
			"price":    item.Price,
		})
	}
	c.JSON(201, gin.H{
		"message": "Order placed successfully",
		"order": gin.H{
			"id":        order.ID.Hex(),
			"createdAt": order.CreatedAt,
			"status":    order.Status,
			"subtotal":  order.Subtotal,
			"tax":       order.Tax,
			"total":     order.Total,
			"items":     items,
		},
	})
}

func (s *Server) getOrders(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	orders, err := s.orders.List(c.Request.Context(), uid, c.GetString(auth.CtxRole))
	if err != nil {
		respondServiceError(c, err, "Error fetching orders")
		return
	}
	c.JSON(200, orders)
}
