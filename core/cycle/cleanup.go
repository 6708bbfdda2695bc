// ABOUTME: Cleanup evicts stale rendered images and aged temp files after each cycle
// ABOUTME: Newest files survive; everything beyond the retention limit is removed by age

package cycle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"okcrisis-api/core/interfaces"
)

// tempFileMaxAge is how long temp files survive before cleanup removes them.
const tempFileMaxAge = 24 * time.Hour

// CleanerConfig holds the directories and retention limits.
type CleanerConfig struct {
	ImageDir string
	ComicDir string
	TempDirs []string

	MaxImagesStored      int
	MaxComicImagesStored int
}

// Cleaner removes files the archive no longer references.
type Cleaner struct {
	cfg    CleanerConfig
	logger interfaces.Logger
}

// NewCleaner creates a cleaner for the configured directories.
func NewCleaner(cfg CleanerConfig, logger interfaces.Logger) *Cleaner {
	return &Cleaner{cfg: cfg, logger: logger}
}

// Run performs one cleanup pass and returns the errors it hit. Every
// directory is processed even when an earlier one fails.
func (c *Cleaner) Run() []error {
	var errs []error

	for _, dir := range c.cfg.TempDirs {
		errs = append(errs, c.removeAgedFiles(dir, tempFileMaxAge)...)
	}

	errs = append(errs, c.evictOldImages(c.cfg.ImageDir, c.cfg.MaxImagesStored)...)
	errs = append(errs, c.evictOldImages(c.cfg.ComicDir, c.cfg.MaxComicImagesStored)...)

	c.logger.Info("Cleanup completed", map[string]interface{}{"errors": len(errs)})
	return errs
}

// removeAgedFiles deletes regular files older than maxAge.
func (c *Cleaner) removeAgedFiles(dir string, maxAge time.Duration) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("read %s: %w", dir, err)}
	}

	var errs []error
	cutoff := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
				continue
			}
			c.logger.Info("Removed aged temp file", map[string]interface{}{"path": path})
		}
	}
	return errs
}

// evictOldImages keeps the newest limit image files by modification
// time and removes the rest.
func (c *Cleaner) evictOldImages(dir string, limit int) []error {
	if limit <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("read %s: %w", dir, err)}
	}

	type agedFile struct {
		path    string
		modTime time.Time
	}

	var files []agedFile
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, agedFile{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(files) <= limit {
		return nil
	}

	// Newest first; everything past the limit goes.
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	var errs []error
	for _, f := range files[limit:] {
		if err := os.Remove(f.path); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", f.path, err))
			continue
		}
		c.logger.Info("Removed old image", map[string]interface{}{"path": f.path})
	}
	return errs
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
