package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type Orders struct {
	col *mongo.Collection
}

func (o *Orders) Insert(ctx context.Context, order *models.Order) error {
	res, err := o.col.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ByUser returns the user's orders, newest first.
func (o *Orders) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return o.list(ctx, bson.M{"userId": userID})
}

// All returns every order in the system, newest first. Admin only.
func (o *Orders) All(ctx context.Context) ([]models.Order, error) {
	return o.list(ctx, bson.M{})
}

func (o *Orders) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := o.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
