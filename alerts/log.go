package alerts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"kitchen-guard/models"
	"kitchen-guard/utils"
)

// Log persists alerts as one JSON array per calendar day
// (alerts_YYYYMMDD.json), the append-by-rewrite scheme downstream
// tooling already reads.
type Log struct {
	mu  sync.RWMutex
	dir string
}

// NewLog returns a Log writing under dir. The directory is created on
// first append.
func NewLog(dir string) *Log {
	return &Log{dir: dir}
}

// Dir returns the directory the daily files live in.
func (l *Log) Dir() string {
	return l.dir
}

func (l *Log) fileFor(day time.Time) string {
	return filepath.Join(l.dir, fmt.Sprintf("alerts_%s.json", day.Format("20060102")))
}

// loadInternal reads one day's alerts without taking the lock. A
// corrupt day file starts fresh rather than erroring.
func (l *Log) loadInternal(day time.Time) ([]models.Alert, error) {
	filePath := l.fileFor(day)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return []models.Alert{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading alert log: %v", err)
	}
	if len(data) == 0 {
		return []models.Alert{}, nil
	}

	var logged []models.Alert
	if err := json.Unmarshal(data, &logged); err != nil {
		return []models.Alert{}, nil
	}

	return logged, nil
}

// Append adds an alert to the file for the day it was raised.
func (l *Log) Append(alert models.Alert) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := alert.Timestamp
	if day.IsZero() {
		day = time.Now()
	}

	logged, err := l.loadInternal(day)
	if err != nil {
		return err
	}
	logged = append(logged, alert)

	if err := utils.CreateFolder(l.dir); err != nil {
		return fmt.Errorf("error creating log directory: %v", err)
	}

	data, err := json.MarshalIndent(logged, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling alerts: %v", err)
	}
	if err := os.WriteFile(l.fileFor(day), data, 0644); err != nil {
		return fmt.Errorf("error writing alert log: %v", err)
	}

	return nil
}

// ForDay returns the alerts logged on the given day.
func (l *Log) ForDay(day time.Time) ([]models.Alert, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadInternal(day)
}
