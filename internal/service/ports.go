package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

// Store interfaces implemented by internal/store. Lookups return (nil, nil)
// when the document does not exist.

type ProductStore interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ByLegacyID(ctx context.Context, id int) (*models.Product, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
}

type CartStore interface {
	ByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	SaveItems(ctx context.Context, cartID primitive.ObjectID, items []models.CartItem) error
}

type WishlistStore interface {
	ByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error)
	Create(ctx context.Context, wishlist *models.Wishlist) error
	SaveItems(ctx context.Context, wishlistID primitive.ObjectID, items []models.WishlistItem) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
}
