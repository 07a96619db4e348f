package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmb3/spotify"
	"golang.org/x/oauth2/clientcredentials"
	"gorm.io/gorm"

	"github.com/taras/musicstore/config"
	"github.com/taras/musicstore/models"
)

// ImportHandler looks a track up on Spotify by ISRC and files it into the
// catalog: album, authors and song rows plus the author links.
type ImportHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewImportHandler(db *gorm.DB, cfg *config.Config) *ImportHandler {
	return &ImportHandler{db: db, cfg: cfg}
}

func (h *ImportHandler) ImportByISRC(c *gin.Context) {
	isrc := c.Query("isrc")
	if isrc == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isrc parameter is required"})
		return
	}
	if h.cfg.SpotifyID == "" || h.cfg.SpotifySecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "track import is not configured"})
		return
	}

	found, err := h.search(c.Request.Context(), isrc)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	var songID uint
	err = h.db.Transaction(func(tx *gorm.DB) error {
		album := models.Album{Title: found.Album.Name}
		if released := found.Album.ReleaseDateTime(); !released.IsZero() {
			year := released.Year()
			album.ReleaseYear = &year
		}
		if err := tx.Where("title = ?", album.Title).FirstOrCreate(&album).Error; err != nil {
			return err
		}

		song := models.Song{Title: found.Name, AlbumID: &album.ID}
		if err := tx.Create(&song).Error; err != nil {
			return err
		}

		for _, artist := range found.Artists {
			author := models.Author{Name: artist.Name}
			if err := tx.Where("name = ?", author.Name).FirstOrCreate(&author).Error; err != nil {
				return err
			}
			link := models.SongAuthor{SongID: song.ID, AuthorID: author.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		songID = song.ID
		return nil
	})
	if err != nil {
		storeError(c, err, "Song")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Song imported", "id": songID})
}

// search returns the most popular track matching the ISRC.
func (h *ImportHandler) search(ctx context.Context, isrc string) (*spotify.FullTrack, error) {
	conf := &clientcredentials.Config{
		ClientID:     h.cfg.SpotifyID,
		ClientSecret: h.cfg.SpotifySecret,
		TokenURL:     spotify.TokenURL,
	}
	token, err := conf.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Spotify API token: %v", err)
	}

	client := spotify.Authenticator{}.NewClient(token)

	results, err := client.Search("isrc:"+isrc, spotify.SearchTypeTrack)
	if err != nil {
		return nil, fmt.Errorf("failed to search for track: %v", err)
	}
	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return nil, fmt.Errorf("no track found for the given ISRC")
	}

	best := results.Tracks.Tracks[0]
	for _, track := range results.Tracks.Tracks {
		if track.Popularity > best.Popularity {
			best = track
		}
	}
	return &best, nil
}
