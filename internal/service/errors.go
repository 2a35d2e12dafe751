package service

import "errors"

// Business-rule failures, mapped to HTTP statuses by the handlers.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateSKU       = errors.New("sku already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrOrderNotFound      = errors.New("purchase order not found")
	ErrItemNotInOrder     = errors.New("item does not belong to this purchase order")
	ErrValidation         = errors.New("validation failed")
)
