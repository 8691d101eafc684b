package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrMealNotFound       = errors.New("meal not found")
	ErrForbidden          = errors.New("not allowed")
	ErrProfileIncomplete  = errors.New("profile incomplete")
)
