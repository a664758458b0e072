package utils

import (
	"carhub/config"
	"carhub/database"
	"carhub/models"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// logCleaner logs cleaner events with timestamp
func logCleaner(message string) {
	log.Printf("[UPLOAD-CLEANER %s] %s", time.Now().Format(time.RFC3339), message)
}

// isReferenced reports whether any stored record still points at the upload
func isReferenced(filename string) bool {
	db := database.Database.Db
	url := GetFileURL(filename)

	var count int64
	db.Model(&models.Car{}).Where("image = ?", url).Count(&count)
	if count > 0 {
		return true
	}
	db.Model(&models.Business{}).Where("logo = ?", url).Count(&count)
	if count > 0 {
		return true
	}
	db.Model(&models.Review{}).Where("icon = ?", url).Count(&count)
	return count > 0
}

// CleanupUploads removes uploaded files past their TTL that no car image,
// business logo or review icon references anymore.
func CleanupUploads() {
	dir := config.AppConfig.UploadDir
	ttl := time.Duration(config.AppConfig.UploadTTLHours) * time.Hour

	entries, err := os.ReadDir(dir)
	if err != nil {
		logCleaner("Error reading upload dir: " + err.Error())
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < ttl {
			continue
		}
		if isReferenced(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			logCleaner("Error removing " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logCleaner(fmt.Sprintf("Removed %d unreferenced uploads", removed))
	}
}

// StartUploadCleanup schedules the daily upload garbage collection
func StartUploadCleanup() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@daily", CleanupUploads); err != nil {
		log.Fatalf("Failed to schedule upload cleanup: %v", err)
	}
	c.Start()
	logCleaner("Upload cleanup scheduled (@daily)")
	return c
}
