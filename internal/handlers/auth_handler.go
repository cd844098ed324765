package handlers

import (
	"errors"
	"net/http"
	"task-reminder-api/internal/auth"
	"task-reminder-api/internal/database"
	"task-reminder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /register
// Creates a new user keyed by phone number; duplicate registration is a conflict.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "phone_number is required",
		})
		return
	}

	db := database.GetDB()

	var existing models.User
	err := db.Where("phone_number = ?", req.PhoneNumber).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
		return
	}

	user := models.User{
		ID:          uuid.New().String(),
		PhoneNumber: req.PhoneNumber,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /login
// Resolves the phone number to a user and returns a signed token.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "phone_number is required",
		})
		return
	}

	var user models.User
	err := database.GetDB().Where("phone_number = ?", req.PhoneNumber).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return
	}

	token, err := auth.GenerateToken(user.ID, user.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
