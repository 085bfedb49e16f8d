package utils

import (
	"fmt"
	"os"
)

// GetEnv returns the value of an environment variable, or a fallback
// value when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// CreateFolder creates a directory (and any parents) if it doesn't exist.
func CreateFolder(folderPath string) error {
	err := os.MkdirAll(folderPath, 0755)
	if err != nil {
		return fmt.Errorf("failed to create folder %s: %v", folderPath, err)
	}
	return nil
}
