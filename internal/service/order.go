package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

var taxRate = decimal.NewFromFloat(0.10)

// OrderSummary is the list-endpoint projection of an order.
type OrderSummary struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Subtotal float64   `json:"subtotal"`
	Tax      float64   `json:"tax"`
	Total    float64   `json:"total"`
	Items    []string  `json:"items"`
}

type OrderService struct {
	orders   OrderStore
	carts    CartStore
	products ProductStore
	now      func() time.Time
}

func NewOrderService(orders OrderStore, carts CartStore, products ProductStore) *OrderService {
	return &OrderService{
		orders:   orders,
		carts:    carts,
		products: products,
		now:      time.Now,
	}
}

// CreateFromCart snapshots the user's cart into an immutable order and clears
// the cart. Line name/image/price are copied from the product at this moment
// and never re-derived, so later catalog edits cannot change the order.
func (s *OrderService) CreateFromCart(ctx context.Context, userID primitive.ObjectID) (*models.Order, error) {
	cart, err := s.carts.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	subtotal := decimal.Zero
	for _, ci := range cart.Items {
		product, ok := products[ci.ProductID]
		if !ok {
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.SellingPrice,
			Quantity:  ci.Quantity,
		})
		subtotal = subtotal.Add(
			decimal.NewFromFloat(product.SellingPrice).Mul(decimal.NewFromInt(int64(ci.Quantity))),
		)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	subtotalF, _ := subtotal.Float64()
	taxF, _ := tax.Float64()
	totalF, _ := total.Float64()

	order := &models.Order{
		UserID:    userID,
		Items:     items,
		Subtotal:  subtotalF,
		Tax:       taxF,
		Total:     totalF,
		Status:    "Processing",
		CreatedAt: s.now(),
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.SaveItems(ctx, cart.ID, []models.CartItem{}); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the caller's orders, or every order when the caller is an
// admin. Newest first either way.
func (s *OrderService) List(ctx context.Context, userID primitive.ObjectID, role string) ([]OrderSummary, error) {
	var (
		orders []models.Order
		err    error
	)
	if role == "admin" {
		orders, err = s.orders.All(ctx)
	} else {
		orders, err = s.orders.ByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		names := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			names = append(names, item.Name)
		}
		summaries = append(summaries, OrderSummary{
			ID:       o.ID.Hex(),
			Date:     o.CreatedAt,
			Status:   o.Status,
			Subtotal: o.Subtotal,
			Tax:      o.Tax,
			Total:    o.Total,
			Items:    names,
		})
	}
	return summaries, nil
}
