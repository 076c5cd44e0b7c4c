// Package api exposes the HTTP surface: route table, request binding, and the
// mapping from service errors to status codes.
package api

import (
	"context"
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/auth"
	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
	"github.com/Mathumitha-create/BeautyHub-Backend/internal/service"
)

type UserStore interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

type ProductCatalog interface {
	List(ctx context.Context) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
}

type Server struct {
	users     UserStore
	products  ProductCatalog
	tokens    *auth.TokenManager
	carts     *service.CartService
	wishlists *service.WishlistService
	orders    *service.OrderService
}

type Deps struct {
	Users     UserStore
	Products  ProductCatalog
	Tokens    *auth.TokenManager
	Carts     *service.CartService
	Wishlists *service.WishlistService
	Orders    *service.OrderService
}

func NewServer(deps Deps) *Server {
	return &Server{
		users:     deps.Users,
		products:  deps.Products,
		tokens:    deps.Tokens,
		carts:     deps.Carts,
		wishlists: deps.Wishlists,
		orders:    deps.Orders,
	}
}

func (s *Server) Router(clientOrigin string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Server is running")
	})

	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)

	r.GET("/products", s.listProducts)
	r.POST("/products", s.createProduct)

	authed := r.Group("/", auth.Middleware(s.tokens, s.users))
	{
		authed.GET("/profile", s.getProfile)

		authed.GET("/cart", s.getCart)
		authed.POST("/cart", s.addToCart)
		authed.PATCH("/cart/:id", s.updateCartItem)
		authed.DELETE("/cart/:id", s.deleteCartItem)

		authed.GET("/wishlist", s.getWishlist)
		authed.POST("/wishlist", s.addToWishlist)
		authed.DELETE("/wishlist/:id", s.deleteWishlistItem)

		authed.GET("/orders", s.getOrders)
		authed.POST("/orders", s.createOrder)
	}

	return r
}

// callerID returns the authenticated user's id from the request context.
func callerID(c *gin.Context) (primitive.ObjectID, bool) {
	uid, err := primitive.ObjectIDFromHex(c.GetString(auth.CtxUserID))
	if err != nil {
		c.JSON(401, gin.H{"message": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	return uid, true
}

// respondServiceError maps service sentinels to their status codes; anything
// else is an internal error reported with the underlying detail.
func respondServiceError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrProductIDRequired),
		errors.Is(err, service.ErrCartEmpty):
		c.JSON(400, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrWishlistNotFound),
		errors.Is(err, service.ErrWishlistItemNotFound):
		c.JSON(404, gin.H{"message": err.Error()})
	default:
		c.JSON(500, gin.H{"message": internalMsg, "error": err.Error()})
	}
}
