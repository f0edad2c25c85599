package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"

	"github.com/robfig/cron/v3"
)

// InitializeInactivityScheduler sets up the daily inactivity check
func InitializeInactivityScheduler() *cron.Cron {
	log.Println("[INACTIVITY-SCHEDULER] Initializing inactivity scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[INACTIVITY-SCHEDULER] Running daily inactivity check...")
		BlockInactiveUsers()
	})

	c.Start()
	log.Println("[INACTIVITY-SCHEDULER] Inactivity scheduler started - runs daily at 3 AM")

	return c
}

// BlockInactiveUsers marks users INACTIVE when they have not logged in within
// the configured inactivity window. It is a no-op unless the toggle is on.
func BlockInactiveUsers() {
	db := database.Database.Db

	var cfg models.SystemConfig
	if err := db.First(&cfg).Error; err != nil {
		log.Printf("[INACTIVITY-SCHEDULER] No system config found, skipping: %v", err)
		return
	}

	if !cfg.InactivityBlockEnabled {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -cfg.InactivityBlockDays)

	result := db.Model(&models.User{}).
		Where("status = ? AND last_login IS NOT NULL AND last_login < ?", models.StatusActive, cutoff).
		Update("status", models.StatusInactive)

	if result.Error != nil {
		log.Printf("[INACTIVITY-SCHEDULER] Error blocking inactive users: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[INACTIVITY-SCHEDULER] Blocked %d inactive users", result.RowsAffected)
	}
}
