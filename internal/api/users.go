package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// SignupRequest represents a signup request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`           // Name must be provided
	Email    string `json:"email" binding:"required,email"`    // Valid email
	Password string `json:"password" binding:"required,min=6"` // At least 6 characters
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// ListUsersHandler returns every user, passwords excluded
func ListUsersHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}

// SignupHandler creates a new user
func SignupHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if !bindJSON(c, &req) {
			return
		}
		user, err := users.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// LoginHandler checks the submitted credentials
func LoginHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := users.Login(c.Request.Context(), req.Email, req.Password); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged in!"})
	}
}
