package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type Wishlists struct {
	col *mongo.Collection
}

func (w *Wishlists) ByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := w.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&wishlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (w *Wishlists) Create(ctx context.Context, wishlist *models.Wishlist) error {
	res, err := w.col.InsertOne(ctx, wishlist)
	if err != nil {
		return err
	}
	wishlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (w *Wishlists) SaveItems(ctx context.Context, wishlistID primitive.ObjectID, items []models.WishlistItem) error {
	if items == nil {
		items = []models.WishlistItem{}
	}
	_, err := w.col.UpdateByID(ctx, wishlistID, bson.M{"$set": bson.M{"items": items}})
	return err
}
