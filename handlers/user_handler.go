package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id").Find(&users).Error; err != nil {
		storeError(c, err, "Users")
		return
	}

	response := make([]gin.H, 0, len(users))
	for _, u := range users {
		response = append(response, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
	}
	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := models.User{
		Username:         req.Username,
		Email:            req.Email,
		RegistrationDate: time.Now(),
	}
	if err := h.db.Create(&user).Error; err != nil {
		storeError(c, err, "User")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "id": user.ID})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		storeError(c, err, "User")
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			storeError(c, err, "User")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.User{}, id)
	if res.Error != nil {
		storeError(c, res.Error, "User")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "User")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
