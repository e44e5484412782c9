package dto

import "github.com/oceanshop/storefront/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type UserResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
