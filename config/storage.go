package config

import (
	"log"
	"os"
	"path/filepath"
)

// InitStorage prepares the local storage directories used for persisted cart
// records and the pending-order journal.
func InitStorage() {
	dirs := []string{
		AppConfig.StorageDir,
		filepath.Join(AppConfig.StorageDir, "carts"),
		filepath.Join(AppConfig.StorageDir, "pending-orders"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatalf("Failed to create storage directory %s: %v", dir, err)
		}
	}

	log.Printf("Local storage ready at %s", AppConfig.StorageDir)
}

func CartStorageDir() string {
	return filepath.Join(AppConfig.StorageDir, "carts")
}

func PendingOrderDir() string {
	return filepath.Join(AppConfig.StorageDir, "pending-orders")
}
