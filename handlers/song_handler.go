package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

type SongHandler struct {
	db *gorm.DB
}

func NewSongHandler(db *gorm.DB) *SongHandler {
	return &SongHandler{db: db}
}

func (h *SongHandler) List(c *gin.Context) {
	var songs []models.Song
	if err := h.db.Order("id").Find(&songs).Error; err != nil {
		storeError(c, err, "Songs")
		return
	}

	response := make([]gin.H, 0, len(songs))
	for _, s := range songs {
		response = append(response, gin.H{
			"id":        s.ID,
			"title":     s.Title,
			"price":     s.Price,
			"downloads": s.DownloadsCount,
			"genre_id":  s.GenreID,
			"album_id":  s.AlbumID,
		})
	}
	c.JSON(http.StatusOK, response)
}

func (h *SongHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var song models.Song
	if err := h.db.First(&song, id).Error; err != nil {
		storeError(c, err, "Song")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": song.ID, "title": song.Title, "price": song.Price})
}

func (h *SongHandler) Create(c *gin.Context) {
	var req struct {
		Title   string           `json:"title" binding:"required"`
		Price   *decimal.Decimal `json:"price"`
		GenreID *uint            `json:"genre_id"`
		AlbumID *uint            `json:"album_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}
	if price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	song := models.Song{
		Title:   req.Title,
		Price:   price,
		GenreID: req.GenreID,
		AlbumID: req.AlbumID,
	}
	if err := h.db.Create(&song).Error; err != nil {
		storeError(c, err, "Song")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Song added", "id": song.ID})
}

func (h *SongHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title   *string          `json:"title"`
		Price   *decimal.Decimal `json:"price"`
		GenreID optionalID       `json:"genre_id"`
		AlbumID optionalID       `json:"album_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	var song models.Song
	if err := h.db.First(&song, id).Error; err != nil {
		storeError(c, err, "Song")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.GenreID.Set {
		updates["genre_id"] = req.GenreID.Value
	}
	if req.AlbumID.Set {
		updates["album_id"] = req.AlbumID.Value
	}
	if len(updates) > 0 {
		if err := h.db.Model(&song).Updates(updates).Error; err != nil {
			storeError(c, err, "Song")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song updated"})
}

func (h *SongHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Song{}, id)
	if res.Error != nil {
		storeError(c, res.Error, "Song")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Song")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song deleted"})
}

func (h *SongHandler) ListAuthors(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var song models.Song
	if err := h.db.Preload("Authors").First(&song, id).Error; err != nil {
		storeError(c, err, "Song")
		return
	}

	response := make([]gin.H, 0, len(song.Authors))
	for _, a := range song.Authors {
		response = append(response, gin.H{"id": a.ID, "name": a.Name, "country": a.Country})
	}
	c.JSON(http.StatusOK, response)
}

func (h *SongHandler) AttachAuthor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		AuthorID uint `json:"author_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.db.First(&models.Song{}, id).Error; err != nil {
		storeError(c, err, "Song")
		return
	}
	if err := h.db.First(&models.Author{}, req.AuthorID).Error; err != nil {
		storeError(c, err, "Author")
		return
	}

	link := models.SongAuthor{SongID: id, AuthorID: req.AuthorID}
	if err := h.db.Create(&link).Error; err != nil {
		storeError(c, err, "Song author link")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Author linked"})
}

func (h *SongHandler) DetachAuthor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	authorID, ok := parseID(c, "authorID")
	if !ok {
		return
	}

	res := h.db.Delete(&models.SongAuthor{SongID: id, AuthorID: authorID})
	if res.Error != nil {
		storeError(c, res.Error, "Song author link")
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Song author link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author unlinked"})
}
