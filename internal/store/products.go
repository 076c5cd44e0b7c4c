package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type Products struct {
	col *mongo.Collection
}

func (p *Products) ByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := p.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ByLegacyID looks a product up by the old numeric catalog id.
func (p *Products) ByLegacyID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := p.col.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ByIDs batch-resolves product references, keyed by ObjectID. Missing ids are
// simply absent from the result.
func (p *Products) ByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	out := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := p.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, product := range products {
		out[product.ID] = product
	}
	return out, nil
}

func (p *Products) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := p.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Products) Insert(ctx context.Context, product *models.Product) error {
	res, err := p.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
