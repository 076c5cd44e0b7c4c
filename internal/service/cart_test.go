package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

func newCartFixture() (*CartService, *memCarts, *memProducts) {
	carts := newMemCarts()
	products := &memProducts{}
	return NewCartService(carts, products), carts, products
}

func TestCartAddMergesSameProduct(t *testing.T) {
	svc, _, products := newCartFixture()
	userID := primitive.NewObjectID()
	p := products.add(models.Product{Name: "Shampoo", SellingPrice: 12.5})

	_, err := svc.Add(context.Background(), userID, p.ID.Hex(), 2)
	require.NoError(t, err)

	lines, err := svc.Add(context.Background(), userID, p.ID.Hex(), 3)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	require.Equal(t, 5, lines[0].Quantity)
	require.Equal(t, p.ID.Hex(), lines[0].ProductID)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	svc, _, products := newCartFixture()
	userID := primitive.NewObjectID()
	p := products.add(models.Product{Name: "Conditioner", SellingPrice: 8})

	lines, err := svc.Add(context.Background(), userID, p.ID.Hex(), 0)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Quantity)

	lines, err = svc.Add(context.Background(), userID, p.ID.Hex(), -4)
	require.NoError(t, err)
	require.Equal(t, 2, lines[0].Quantity)
}

func TestCartAddValidation(t *testing.T) {
	svc, _, _ := newCartFixture()
	userID := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), userID, "", 1)
	require.ErrorIs(t, err, ErrProductIDRequired)

	_, err = svc.Add(context.Background(), userID, primitive.NewObjectID().Hex(), 1)
	require.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Add(context.Background(), userID, "not-an-id", 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartGetMissingCartIsEmpty(t *testing.T) {
	svc, _, _ := newCartFixture()

	lines, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Empty(t, lines)
}

func TestCartGetDropsOrphanedLines(t *testing.T) {
	svc, _, products := newCartFixture()
	userID := primitive.NewObjectID()
	kept := products.add(models.Product{Name: "Soap", SellingPrice: 3})
	gone := products.add(models.Product{Name: "Discontinued", SellingPrice: 9})

	_, err := svc.Add(context.Background(), userID, kept.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, gone.ID.Hex(), 1)
	require.NoError(t, err)

	products.remove(gone.ID)

	lines, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "Soap", lines[0].Name)
}

func TestCartUpdateQuantityWritesVerbatim(t *testing.T) {
	svc, carts, products := newCartFixture()
	userID := primitive.NewObjectID()
	p := products.add(models.Product{Name: "Oil", SellingPrice: 20})

	_, err := svc.Add(context.Background(), userID, p.ID.Hex(), 2)
	require.NoError(t, err)

	// Zero is accepted on update; the line stays with quantity 0.
	lines, err := svc.UpdateQuantity(context.Background(), userID, p.ID.Hex(), 0)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 0, lines[0].Quantity)

	cart, err := carts.ByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 0, cart.Items[0].Quantity)
}

func TestCartUpdateQuantityByLineID(t *testing.T) {
	svc, carts, products := newCartFixture()
	userID := primitive.NewObjectID()
	p := products.add(models.Product{Name: "Cream", SellingPrice: 15})

	_, err := svc.Add(context.Background(), userID, p.ID.Hex(), 1)
	require.NoError(t, err)

	cart, err := carts.ByUser(context.Background(), userID)
	require.NoError(t, err)

	lines, err := svc.UpdateQuantity(context.Background(), userID, cart.Items[0].ID.Hex(), 7)
	require.NoError(t, err)
	require.Equal(t, 7, lines[0].Quantity)
}

func TestCartUpdateQuantityNotFound(t *testing.T) {
	svc, _, products := newCartFixture()
	userID := primitive.NewObjectID()

	_, err := svc.UpdateQuantity(context.Background(), userID, primitive.NewObjectID().Hex(), 2)
	require.ErrorIs(t, err, ErrCartNotFound)

	p := products.add(models.Product{Name: "Gel", SellingPrice: 6})
	_, err = svc.Add(context.Background(), userID, p.ID.Hex(), 1)
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(context.Background(), userID, primitive.NewObjectID().Hex(), 2)
	require.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartRemoveByLegacyProductID(t *testing.T) {
	svc, _, products := newCartFixture()
	userID := primitive.NewObjectID()
	p := products.add(models.Product{Name: "Scrub", LegacyID: 17, SellingPrice: 11})
	other := products.add(models.Product{Name: "Balm", SellingPrice: 4})

	_, err := svc.Add(context.Background(), userID, p.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, other.ID.Hex(), 1)
	require.NoError(t, err)

	lines, err := svc.Remove(context.Background(), userID, "17")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "Balm", lines[0].Name)
}

func TestCartRemoveNotFound(t *testing.T) {
	svc, _, products := newCartFixture()
	userID := primitive.NewObjectID()

	_, err := svc.Remove(context.Background(), userID, "1")
	require.ErrorIs(t, err, ErrCartNotFound)

	p := products.add(models.Product{Name: "Mist", SellingPrice: 5})
	_, err = svc.Add(context.Background(), userID, p.ID.Hex(), 1)
	require.NoError(t, err)

	_, err = svc.Remove(context.Background(), userID, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrCartItemNotFound)
}
