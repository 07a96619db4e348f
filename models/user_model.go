package models

import "time"

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email            string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	RegistrationDate time.Time `json:"registration_date"`
}

// UserDownload records one download of a song by a user. The composite
// primary key rejects a repeat (user, song) pair.
type UserDownload struct {
	UserID       uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	SongID       uint      `json:"song_id" gorm:"primaryKey;autoIncrement:false"`
	DownloadDate time.Time `json:"date"`
	User         *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Song         *Song     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
