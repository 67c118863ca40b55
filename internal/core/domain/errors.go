package domain

import "errors"

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrNotFound             = errors.New("not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrNotApproved          = errors.New("marketplace not approved for seller tickets")
	ErrForbidden            = errors.New("forbidden")
)
