package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type AuthorHandler struct {
	db *gorm.DB
}

func NewAuthorHandler(db *gorm.DB) *AuthorHandler {
	return &AuthorHandler{db: db}
}

func (h *AuthorHandler) List(c *gin.Context) {
	var authors []models.Author
	if err := h.db.Order("id").Find(&authors).Error; err != nil {
		storeError(c, err, "Authors")
		return
	}

	response := make([]gin.H, 0, len(authors))
	for _, a := range authors {
		response = append(response, gin.H{
			"id":         a.ID,
			"name":       a.Name,
			"country":    a.Country,
			"birth_date": a.BirthDate,
		})
	}
	c.JSON(http.StatusOK, response)
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req struct {
		Name      string       `json:"name" binding:"required"`
		Country   string       `json:"country"`
		BirthDate *models.Date `json:"birth_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	author := models.Author{Name: req.Name, Country: req.Country, BirthDate: req.BirthDate}
	if err := h.db.Create(&author).Error; err != nil {
		storeError(c, err, "Author")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Author added", "id": author.ID})
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name      *string      `json:"name"`
		Country   *string      `json:"country"`
		BirthDate *models.Date `json:"birth_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var author models.Author
	if err := h.db.First(&author, id).Error; err != nil {
		storeError(c, err, "Author")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if len(updates) > 0 {
		if err := h.db.Model(&author).Updates(updates).Error; err != nil {
			storeError(c, err, "Author")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author updated"})
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Author{}, id)
	if res.Error != nil {
		storeError(c, res.Error, "Author")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Author")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author deleted"})
}
