package dto

import (
	"time"

	"tenantly.app/api-server/internal/model"
)

type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FullName         string `json:"full_name" binding:"required,min=1,max=255"`
	OrganizationName string `json:"organization_name" binding:"required,min=1,max=255"`
	Subdomain        string `json:"subdomain" binding:"required,min=1,max=63,hostname_rfc1123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	CreatedAt      time.Time      `json:"created_at"`
	LastLogin      *time.Time     `json:"last_login,omitempty"`
	Email          string         `json:"email"`
	FullName       string         `json:"full_name"`
	Role           model.UserRole `json:"role"`
	ID             int64          `json:"id,string"`
	OrganizationID int64          `json:"organization_id,string"`
	IsActive       bool           `json:"is_active"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		IsActive:       user.IsActive,
		LastLogin:      user.LastLogin,
		CreatedAt:      user.CreatedAt,
	}
}

func ToUserResponses(users []model.User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i := range users {
		result[i] = ToUserResponse(&users[i])
	}
	return result
}
