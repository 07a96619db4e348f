package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type GenreHandler struct {
	db *gorm.DB
}

func NewGenreHandler(db *gorm.DB) *GenreHandler {
	return &GenreHandler{db: db}
}

func (h *GenreHandler) List(c *gin.Context) {
	var genres []models.Genre
	if err := h.db.Order("id").Find(&genres).Error; err != nil {
		storeError(c, err, "Genres")
		return
	}

	response := make([]gin.H, 0, len(genres))
	for _, g := range genres {
		response = append(response, gin.H{"id": g.ID, "name": g.Name})
	}
	c.JSON(http.StatusOK, response)
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	genre := models.Genre{Name: req.Name}
	if err := h.db.Create(&genre).Error; err != nil {
		storeError(c, err, "Genre")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Genre added", "id": genre.ID})
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var genre models.Genre
	if err := h.db.First(&genre, id).Error; err != nil {
		storeError(c, err, "Genre")
		return
	}

	if req.Name != nil {
		if err := h.db.Model(&genre).Update("name", *req.Name).Error; err != nil {
			storeError(c, err, "Genre")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Genre updated"})
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Genre{}, id)
	if res.Error != nil {
		storeError(c, res.Error, "Genre")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Genre")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Genre deleted"})
}
