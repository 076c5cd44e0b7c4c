package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

// WishlistLine is a wishlist item joined with its product.
type WishlistLine struct {
	WishlistItemID string    `json:"wishlistItemId"`
	ProductID      string    `json:"productId"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Image          string    `json:"image"`
	Price          float64   `json:"price"`
	AddedAt        time.Time `json:"addedAt"`
}

type WishlistService struct {
	wishlists WishlistStore
	products  ProductStore
	resolver  lineResolver
	now       func() time.Time
}

func NewWishlistService(wishlists WishlistStore, products ProductStore) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		products:  products,
		resolver:  lineResolver{products: products},
		now:       time.Now,
	}
}

func (s *WishlistService) Get(ctx context.Context, userID primitive.ObjectID) ([]WishlistLine, error) {
	wishlist, err := s.wishlists.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return []WishlistLine{}, nil
	}
	return s.expand(ctx, wishlist.Items)
}

// Add is idempotent: re-adding a product already on the wishlist returns the
// current lines with alreadyPresent set and appends nothing.
func (s *WishlistService) Add(ctx context.Context, userID primitive.ObjectID, productID string) (lines []WishlistLine, alreadyPresent bool, err error) {
	if productID == "" {
		return nil, false, ErrProductIDRequired
	}
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, false, ErrProductNotFound
	}
	product, err := s.products.ByID(ctx, oid)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}

	wishlist, err := s.wishlists.ByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if wishlist == nil {
		wishlist = &models.Wishlist{
			UserID: userID,
			Items: []models.WishlistItem{
				{ID: primitive.NewObjectID(), ProductID: product.ID, AddedAt: s.now()},
			},
		}
		if err := s.wishlists.Create(ctx, wishlist); err != nil {
			return nil, false, err
		}
		lines, err := s.expand(ctx, wishlist.Items)
		return lines, false, err
	}

	for _, item := range wishlist.Items {
		if item.ProductID == product.ID {
			lines, err := s.expand(ctx, wishlist.Items)
			return lines, true, err
		}
	}

	wishlist.Items = append(wishlist.Items, models.WishlistItem{
		ID:        primitive.NewObjectID(),
		ProductID: product.ID,
		AddedAt:   s.now(),
	})
	if err := s.wishlists.SaveItems(ctx, wishlist.ID, wishlist.Items); err != nil {
		return nil, false, err
	}
	lines, err = s.expand(ctx, wishlist.Items)
	return lines, false, err
}

func (s *WishlistService) Remove(ctx context.Context, userID primitive.ObjectID, targetID string) ([]WishlistLine, error) {
	wishlist, err := s.wishlists.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return nil, ErrWishlistNotFound
	}

	idx, err := s.resolver.resolve(ctx, wishlistLineRefs(wishlist.Items), targetID)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, ErrWishlistItemNotFound
	}

	wishlist.Items = append(wishlist.Items[:idx], wishlist.Items[idx+1:]...)
	if err := s.wishlists.SaveItems(ctx, wishlist.ID, wishlist.Items); err != nil {
		return nil, err
	}
	return s.expand(ctx, wishlist.Items)
}

func (s *WishlistService) expand(ctx context.Context, items []models.WishlistItem) ([]WishlistLine, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]WishlistLine, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, WishlistLine{
			WishlistItemID: item.ID.Hex(),
			ProductID:      product.ID.Hex(),
			Name:           product.Name,
			Category:       product.Category,
			Image:          product.Image,
			Price:          product.SellingPrice,
			AddedAt:        item.AddedAt,
		})
	}
	return lines, nil
}
