package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type memProducts struct {
	products []models.Product
}

func (m *memProducts) add(p models.Product) models.Product {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.products = append(m.products, p)
	return p
}

func (m *memProducts) remove(id primitive.ObjectID) {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return
		}
	}
}

func (m *memProducts) setPrice(id primitive.ObjectID, price float64) {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].SellingPrice = price
		}
	}
}

func (m *memProducts) ByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) ByLegacyID(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range m.products {
		if p.LegacyID == id && id != 0 {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) ByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	out := make(map[primitive.ObjectID]models.Product, len(ids))
	for _, id := range ids {
		for _, p := range m.products {
			if p.ID == id {
				out[id] = p
			}
		}
	}
	return out, nil
}

type memCarts struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func (m *memCarts) ByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	for _, cart := range m.carts {
		if cart.UserID == userID {
			cp := *cart
			cp.Items = append([]models.CartItem(nil), cart.Items...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCarts) Create(ctx context.Context, cart *models.Cart) error {
	cart.ID = primitive.NewObjectID()
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	m.carts[cart.ID] = &cp
	return nil
}

func (m *memCarts) SaveItems(ctx context.Context, cartID primitive.ObjectID, items []models.CartItem) error {
	if cart, ok := m.carts[cartID]; ok {
		cart.Items = append([]models.CartItem(nil), items...)
	}
	return nil
}

type memWishlists struct {
	wishlists map[primitive.ObjectID]*models.Wishlist
}

func newMemWishlists() *memWishlists {
	return &memWishlists{wishlists: make(map[primitive.ObjectID]*models.Wishlist)}
}

func (m *memWishlists) ByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	for _, w := range m.wishlists {
		if w.UserID == userID {
			cp := *w
			cp.Items = append([]models.WishlistItem(nil), w.Items...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memWishlists) Create(ctx context.Context, wishlist *models.Wishlist) error {
	wishlist.ID = primitive.NewObjectID()
	cp := *wishlist
	cp.Items = append([]models.WishlistItem(nil), wishlist.Items...)
	m.wishlists[wishlist.ID] = &cp
	return nil
}

func (m *memWishlists) SaveItems(ctx context.Context, wishlistID primitive.ObjectID, items []models.WishlistItem) error {
	if w, ok := m.wishlists[wishlistID]; ok {
		w.Items = append([]models.WishlistItem(nil), items...)
	}
	return nil
}

type memOrders struct {
	orders []models.Order
}

func (m *memOrders) Insert(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	m.orders = append(m.orders, *order)
	return nil
}

// ByUser and All return newest first, as the Mongo store does.
func (m *memOrders) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *memOrders) All(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}
