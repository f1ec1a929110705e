package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"gorm.io/gorm"
)

// MediaLister abstracts where the media files actually live. Storage and
// serving are outside the core; the core only needs the item list so it can
// attach its counters.
type MediaLister interface {
	List() ([]MediaFile, error)
	Remove(name string) error
}

type MediaFile struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

// MediaItem is a file plus its running counters.
type MediaItem struct {
	MediaFile
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
	Favorites int64 `json:"favorites"`
}

type MediaService struct {
	db     *gorm.DB
	lister MediaLister
}

func NewMediaService(db *gorm.DB, lister MediaLister) *MediaService {
	return &MediaService{db: db, lister: lister}
}

func (s *MediaService) List() ([]MediaItem, error) {
	files, err := s.lister.List()
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	items := make([]MediaItem, 0, len(files))
	for _, file := range files {
		item := MediaItem{MediaFile: file}
		var stat models.MediaStat
		if s.db.Where("name = ?", file.Name).First(&stat).Error == nil {
			item.Views = stat.Views
			item.Downloads = stat.Downloads
			item.Favorites = stat.Favorites
		}
		items = append(items, item)
	}
	return items, nil
}

// RecordEvent bumps one counter for one media name. Counters are monotonic;
// there is no reset path.
func (s *MediaService) RecordEvent(name, event string) error {
	var column string
	switch event {
	case models.MediaEventView:
		column = "views"
	case models.MediaEventDownload:
		column = "downloads"
	case models.MediaEventFavorite:
		column = "favorites"
	default:
		return apperr.Validation("Événement invalide.")
	}

	var stat models.MediaStat
	err := s.db.Where(models.MediaStat{Name: name}).FirstOrCreate(&stat).Error
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	err = s.db.Model(&stat).UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

type MediaStats struct {
	Total          int   `json:"total"`
	TotalViews     int64 `json:"totalViews"`
	TotalDownloads int64 `json:"totalDownloads"`
}

func (s *MediaService) Stats() (*MediaStats, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	stats := MediaStats{Total: len(items)}
	for _, item := range items {
		stats.TotalViews += item.Views
		stats.TotalDownloads += item.Downloads
	}
	return &stats, nil
}

func (s *MediaService) Delete(name string) error {
	if err := s.lister.Remove(name); err != nil {
		return apperr.NotFound("Média introuvable.")
	}
	// Counters are kept on purpose: they are monotonic per name.
	return nil
}

// DirLister lists media files straight from a directory.
type DirLister struct {
	Dir string
}

var mediaExtensions = map[string]string{
	".jpg": "image", ".jpeg": "image", ".png": "image", ".gif": "image",
	".webp": "image", ".mp4": "video", ".webm": "video",
}

func (l DirLister) List() ([]MediaFile, error) {
	entries, err := os.ReadDir(l.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		mediaType, ok := mediaExtensions[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, MediaFile{
			Name:      entry.Name(),
			Type:      mediaType,
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
	return files, nil
}

func (l DirLister) Remove(name string) error {
	// Reject path traversal; media names are bare file names.
	if name == "" || name != filepath.Base(name) {
		return os.ErrNotExist
	}
	return os.Remove(filepath.Join(l.Dir, name))
}
