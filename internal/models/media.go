package models

import "time"

// MediaStat holds the running counters for one media file. Counters only
// ever go up; deleting the file does not reset them.
type MediaStat struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Views     int64     `gorm:"not null;default:0" json:"views"`
	Downloads int64     `gorm:"not null;default:0" json:"downloads"`
	Favorites int64     `gorm:"not null;default:0" json:"favorites"`
	UpdatedAt time.Time `json:"-"`
}

const (
	MediaEventView     = "view"
	MediaEventDownload = "download"
	MediaEventFavorite = "favorite"
)
