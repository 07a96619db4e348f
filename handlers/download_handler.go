package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type DownloadHandler struct {
	db *gorm.DB
}

func NewDownloadHandler(db *gorm.DB) *DownloadHandler {
	return &DownloadHandler{db: db}
}

func (h *DownloadHandler) List(c *gin.Context) {
	var downloads []models.UserDownload
	if err := h.db.Order("download_date").Find(&downloads).Error; err != nil {
		storeError(c, err, "Downloads")
		return
	}

	response := make([]gin.H, 0, len(downloads))
	for _, d := range downloads {
		response = append(response, gin.H{
			"user_id": d.UserID,
			"song_id": d.SongID,
			"date":    d.DownloadDate,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Create records one download: the existence checks, the event row and the
// song counter bump all run in one transaction.
func (h *DownloadHandler) Create(c *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
		SongID uint `json:"song_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resource := "Download"
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Song{}, req.SongID).Error; err != nil {
			resource = "Song"
			return err
		}
		if err := tx.First(&models.User{}, req.UserID).Error; err != nil {
			resource = "User"
			return err
		}

		download := models.UserDownload{
			UserID:       req.UserID,
			SongID:       req.SongID,
			DownloadDate: time.Now(),
		}
		if err := tx.Create(&download).Error; err != nil {
			return err
		}
		return tx.Model(&models.Song{}).
			Where("id = ?", req.SongID).
			UpdateColumn("downloads_count", gorm.Expr("downloads_count + ?", 1)).
			Error
	})
	if err != nil {
		storeError(c, err, resource)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Download saved"})
}
