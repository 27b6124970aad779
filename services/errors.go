package services

import "errors"

var (
	ErrInvalidMenu       = errors.New("invalid menu")
	ErrMenuNotFound      = errors.New("menu not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrOwnershipMismatch = errors.New("order does not belong to game")
	ErrGameForbidden     = errors.New("game does not belong to user")
	ErrAlreadyScored     = errors.New("order already scored")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrStorageDisabled    = errors.New("image storage is not configured")
)
