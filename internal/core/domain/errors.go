package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrCheckInNotFound = errors.New("check-in not found")
	ErrTokenNotFound   = errors.New("refresh token not found")

	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrInactiveUser = errors.New("user account is deactivated")

	ErrValidation       = errors.New("validation failed")
	ErrAlreadyCheckedIn = errors.New("habit already checked in for this day")
	ErrDuplicateUser    = errors.New("email or username already registered")

	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)
