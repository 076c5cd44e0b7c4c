package service

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

// lineRef is the part of a cart or wishlist line the resolver needs.
type lineRef struct {
	ID        primitive.ObjectID
	ProductID primitive.ObjectID
}

// lineResolver maps an ambiguous caller-supplied identifier to a line index.
// Clients historically passed product ids (numeric legacy ids included); the
// line's own id came later. Both must keep working.
type lineResolver struct {
	products ProductStore
}

// resolve tries, in order:
//  1. targetID as the line's own ObjectID
//  2. targetID as a product identifier — numeric legacy id first, then
//     ObjectID — matching lines by product reference
//
// Returns -1 when neither strategy finds a line.
func (r lineResolver) resolve(ctx context.Context, lines []lineRef, targetID string) (int, error) {
	oid, oidErr := primitive.ObjectIDFromHex(targetID)
	if oidErr == nil {
		for i, line := range lines {
			if line.ID == oid {
				return i, nil
			}
		}
	}

	var product *models.Product
	if n, err := strconv.Atoi(targetID); err == nil {
		p, err := r.products.ByLegacyID(ctx, n)
		if err != nil {
			return -1, err
		}
		product = p
	}
	if product == nil && oidErr == nil {
		p, err := r.products.ByID(ctx, oid)
		if err != nil {
			return -1, err
		}
		product = p
	}
	if product != nil {
		for i, line := range lines {
			if line.ProductID == product.ID {
				return i, nil
			}
		}
	}

	return -1, nil
}

func cartLineRefs(items []models.CartItem) []lineRef {
	refs := make([]lineRef, len(items))
	for i, item := range items {
		refs[i] = lineRef{ID: item.ID, ProductID: item.ProductID}
	}
	return refs
}

func wishlistLineRefs(items []models.WishlistItem) []lineRef {
	refs := make([]lineRef, len(items))
	for i, item := range items {
		refs[i] = lineRef{ID: item.ID, ProductID: item.ProductID}
	}
	return refs
}
