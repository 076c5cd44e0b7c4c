// Package store wraps the MongoDB collections behind small per-collection
// accessors. All lookups are scoped by id or userId; absent documents are
// reported as (nil, nil) rather than an error.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Users     *Users
	Products  *Products
	Carts     *Carts
	Wishlists *Wishlists
	Orders    *Orders
}

func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &Store{
		client:    client,
		db:        db,
		Users:     &Users{col: db.Collection("users")},
		Products:  &Products{col: db.Collection("products")},
		Carts:     &Carts{col: db.Collection("carts")},
		Wishlists: &Wishlists{col: db.Collection("wishlists")},
		Orders:    &Orders{col: db.Collection("orders")},
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
