package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taras/musicstore/config"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	songs := NewSongHandler(db)
	api.GET("/songs", songs.List)
	api.GET("/songs/:id", songs.Get)
	api.POST("/songs", songs.Create)
	api.PUT("/songs/:id", songs.Update)
	api.DELETE("/songs/:id", songs.Delete)
	api.GET("/songs/:id/authors", songs.ListAuthors)
	api.POST("/songs/:id/authors", songs.AttachAuthor)
	api.DELETE("/songs/:id/authors/:authorID", songs.DetachAuthor)

	authors := NewAuthorHandler(db)
	api.GET("/authors", authors.List)
	api.POST("/authors", authors.Create)
	api.PUT("/authors/:id", authors.Update)
	api.DELETE("/authors/:id", authors.Delete)

	albums := NewAlbumHandler(db)
	api.GET("/albums", albums.List)
	api.POST("/albums", albums.Create)
	api.PUT("/albums/:id", albums.Update)
	api.DELETE("/albums/:id", albums.Delete)

	genres := NewGenreHandler(db)
	api.GET("/genres", genres.List)
	api.POST("/genres", genres.Create)
	api.PUT("/genres/:id", genres.Update)
	api.DELETE("/genres/:id", genres.Delete)

	labels := NewLabelHandler(db)
	api.GET("/labels", labels.List)
	api.POST("/labels", labels.Create)
	api.PUT("/labels/:id", labels.Update)
	api.DELETE("/labels/:id", labels.Delete)

	users := NewUserHandler(db)
	api.GET("/users", users.List)
	api.POST("/users", users.Create)
	api.PUT("/users/:id", users.Update)
	api.DELETE("/users/:id", users.Delete)

	downloads := NewDownloadHandler(db)
	api.GET("/downloads", downloads.List)
	api.POST("/downloads", downloads.Create)

	imports := NewImportHandler(db, cfg)
	api.POST("/import", imports.ImportByISRC)

	return r
}
