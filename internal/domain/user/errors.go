package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email is already in use")

	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
