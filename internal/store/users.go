package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type Users struct {
	col *mongo.Collection
}

func (u *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := u.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) Insert(ctx context.Context, user *models.User) error {
	res, err := u.col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
