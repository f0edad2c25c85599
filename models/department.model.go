package models

import "time"

// Department bounds how many courses its users may take at once and which
// content they can reach.
type Department struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	Name                  string    `json:"name" gorm:"uniqueIndex;not null"`
	AccessAllCourses      bool      `json:"accessAllCourses" gorm:"default:true"`
	AccessAllTracks       bool      `json:"accessAllTracks" gorm:"default:true"`
	SimultaneousCourses   int       `json:"simultaneousCourses" gorm:"default:5"`
	CertificatePermission bool      `json:"certificatePermission" gorm:"default:true"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
