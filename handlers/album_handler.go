package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type AlbumHandler struct {
	db *gorm.DB
}

func NewAlbumHandler(db *gorm.DB) *AlbumHandler {
	return &AlbumHandler{db: db}
}

func (h *AlbumHandler) List(c *gin.Context) {
	var albums []models.Album
	if err := h.db.Order("id").Find(&albums).Error; err != nil {
		storeError(c, err, "Albums")
		return
	}

	response := make([]gin.H, 0, len(albums))
	for _, a := range albums {
		response = append(response, gin.H{"id": a.ID, "title": a.Title, "year": a.ReleaseYear})
	}
	c.JSON(http.StatusOK, response)
}

func (h *AlbumHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		ReleaseYear *int   `json:"release_year"`
		LabelID     *uint  `json:"label_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	album := models.Album{Title: req.Title, ReleaseYear: req.ReleaseYear, LabelID: req.LabelID}
	if err := h.db.Create(&album).Error; err != nil {
		storeError(c, err, "Album")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Album added", "id": album.ID})
}

func (h *AlbumHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title       *string    `json:"title"`
		ReleaseYear *int       `json:"release_year"`
		LabelID     optionalID `json:"label_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var album models.Album
	if err := h.db.First(&album, id).Error; err != nil {
		storeError(c, err, "Album")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ReleaseYear != nil {
		updates["release_year"] = *req.ReleaseYear
	}
	if req.LabelID.Set {
		updates["label_id"] = req.LabelID.Value
	}
	if len(updates) > 0 {
		if err := h.db.Model(&album).Updates(updates).Error; err != nil {
			storeError(c, err, "Album")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Album updated"})
}

func (h *AlbumHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Album{}, id)
	if res.Error != nil {
		storeError(c, res.Error, "Album")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Album")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Album deleted"})
}
