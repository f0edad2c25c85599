package models

import "time"

// SystemConfig is a singleton record holding global platform toggles. It is
// created with defaults on first access.
type SystemConfig struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	AutoRegister           bool      `json:"autoRegister" gorm:"default:false"`
	ManualApproval         bool      `json:"manualApproval" gorm:"default:true"`
	InactivityBlockDays    int       `json:"inactivityBlockDays" gorm:"default:30"`
	InactivityBlockEnabled bool      `json:"inactivityBlockEnabled" gorm:"default:false"`
	UserLimit              int       `json:"userLimit" gorm:"default:2000"`
	UserLimitEnabled       bool      `json:"userLimitEnabled" gorm:"default:true"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// DefaultSystemConfig returns the record created on first access.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		AutoRegister:           false,
		ManualApproval:         true,
		InactivityBlockDays:    30,
		InactivityBlockEnabled: false,
		UserLimit:              2000,
		UserLimitEnabled:       true,
	}
}
