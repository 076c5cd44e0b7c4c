package service

import "errors"

var (
	ErrProductIDRequired    = errors.New("productId is required")
	ErrProductNotFound      = errors.New("Product not found")
	ErrCartNotFound         = errors.New("Cart not found")
	ErrCartItemNotFound     = errors.New("Product/Item not found in cart")
	ErrWishlistNotFound     = errors.New("Wishlist not found")
	ErrWishlistItemNotFound = errors.New("Product/Item not found in wishlist")
	ErrCartEmpty            = errors.New("Cart is empty")
)
