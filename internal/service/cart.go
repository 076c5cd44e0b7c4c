package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

// CartLine is a cart item joined with its product, as returned to clients.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CartService struct {
	carts    CartStore
	products ProductStore
	resolver lineResolver
}

func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		resolver: lineResolver{products: products},
	}
}

// Get returns the user's cart joined with product details. A missing cart is
// an empty cart, not an error.
func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) ([]CartLine, error) {
	cart, err := s.carts.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return []CartLine{}, nil
	}
	return s.expand(ctx, cart.Items)
}

// Add merges the quantity into an existing line for the product or appends a
// new one, creating the cart on first use. Quantity defaults to 1 when absent
// or non-positive.
func (s *CartService) Add(ctx context.Context, userID primitive.ObjectID, productID string, quantity int) ([]CartLine, error) {
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		quantity = 1
	}

	cart, err := s.carts.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{
			UserID: userID,
			Items: []models.CartItem{
				{ID: primitive.NewObjectID(), ProductID: product.ID, Quantity: quantity},
			},
		}
		if err := s.carts.Create(ctx, cart); err != nil {
			return nil, err
		}
		return s.expand(ctx, cart.Items)
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ID:        primitive.NewObjectID(),
			ProductID: product.ID,
			Quantity:  quantity,
		})
	}
	if err := s.carts.SaveItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, err
	}
	return s.expand(ctx, cart.Items)
}

// UpdateQuantity writes the caller's quantity verbatim to the resolved line.
// Unlike Add it does not enforce positivity; that asymmetry is load-bearing
// for existing clients.
func (s *CartService) UpdateQuantity(ctx context.Context, userID primitive.ObjectID, targetID string, quantity int) ([]CartLine, error) {
	cart, err := s.carts.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	// Drop lines whose product reference was never set before resolving.
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if !item.ProductID.IsZero() {
			items = append(items, item)
		}
	}
	cart.Items = items

	idx, err := s.resolver.resolve(ctx, cartLineRefs(cart.Items), targetID)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}

	cart.Items[idx].Quantity = quantity
	if err := s.carts.SaveItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, err
	}
	return s.expand(ctx, cart.Items)
}

// Remove deletes the resolved line from the cart.
func (s *CartService) Remove(ctx context.Context, userID primitive.ObjectID, targetID string) ([]CartLine, error) {
	cart, err := s.carts.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	idx, err := s.resolver.resolve(ctx, cartLineRefs(cart.Items), targetID)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if err := s.carts.SaveItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, err
	}
	return s.expand(ctx, cart.Items)
}

func (s *CartService) requireProduct(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	product, err := s.products.ByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// expand joins items with their products, silently dropping lines whose
// product no longer exists.
func (s *CartService) expand(ctx context.Context, items []models.CartItem) ([]CartLine, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{
			ProductID: product.ID.Hex(),
			Name:      product.Name,
			Category:  product.Category,
			Image:     product.Image,
			Price:     product.SellingPrice,
			Quantity:  item.Quantity,
		})
	}
	return lines, nil
}
