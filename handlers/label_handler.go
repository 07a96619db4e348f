package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type LabelHandler struct {
	db *gorm.DB
}

func NewLabelHandler(db *gorm.DB) *LabelHandler {
	return &LabelHandler{db: db}
}

func (h *LabelHandler) List(c *gin.Context) {
	var labels []models.Label
	if err := h.db.Order("id").Find(&labels).Error; err != nil {
		storeError(c, err, "Labels")
		return
	}

	response := make([]gin.H, 0, len(labels))
	for _, l := range labels {
		response = append(response, gin.H{"id": l.ID, "name": l.Name, "country": l.Country})
	}
	c.JSON(http.StatusOK, response)
}

func (h *LabelHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Country string `json:"country"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	label := models.Label{Name: req.Name, Country: req.Country}
	if err := h.db.Create(&label).Error; err != nil {
		storeError(c, err, "Label")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Label added", "id": label.ID})
}

func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Country *string `json:"country"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var label models.Label
	if err := h.db.First(&label, id).Error; err != nil {
		storeError(c, err, "Label")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if len(updates) > 0 {
		if err := h.db.Model(&label).Updates(updates).Error; err != nil {
			storeError(c, err, "Label")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label updated"})
}

func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Label{}, id)
	if res.Error != nil {
		storeError(c, res.Error, "Label")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Label")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted"})
}
