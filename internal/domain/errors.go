package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPayloadTooLarge = errors.New("payload exceeds store limit")
	ErrAssetTooLarge   = errors.New("asset exceeds upload limit")
)
