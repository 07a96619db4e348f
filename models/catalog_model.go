package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// prices are JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
}

type Label struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:150;uniqueIndex;not null"`
	Country string `json:"country" gorm:"size:100"`
}

type Author struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:150;not null"`
	Country   string `json:"country" gorm:"size:100"`
	BirthDate *Date  `json:"birth_date" gorm:"type:date"`
}

type Album struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200;not null"`
	ReleaseYear *int   `json:"release_year"`
	LabelID     *uint  `json:"label_id"`
	Label       *Label `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}

type Song struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Title          string          `json:"title" gorm:"size:200;not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null;default:0"`
	DownloadsCount int             `json:"downloads" gorm:"not null;default:0"`
	GenreID        *uint           `json:"genre_id"`
	AlbumID        *uint           `json:"album_id"`
	Genre          *Genre          `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Album          *Album          `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Authors        []Author        `json:"-" gorm:"many2many:song_authors;constraint:OnDelete:CASCADE"`
}

// SongAuthor is the song/author join table. Rows die with either parent.
type SongAuthor struct {
	SongID   uint `gorm:"primaryKey;autoIncrement:false"`
	AuthorID uint `gorm:"primaryKey;autoIncrement:false"`
}
