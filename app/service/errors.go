package service

import "errors"

var (
	ErrGroupNotFound  = errors.New("plan group not found")
	ErrInvalidRequest = errors.New("invalid request")
)
