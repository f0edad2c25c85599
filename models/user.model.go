package models

import "time"

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User / Course status values
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// User is a platform account. Password carries the bcrypt hash and is never
// serialized into responses.
type User struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	Name             string      `json:"name" gorm:"not null"`
	Email            string      `json:"email" gorm:"uniqueIndex;not null"`
	Password         string      `json:"-" gorm:"not null"`
	Role             string      `json:"role" gorm:"default:'USER'"`     // USER, ADMIN
	Status           string      `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	DepartmentID     uint        `json:"departmentId" gorm:"index;not null"`
	Department       *Department `json:"department,omitempty"`
	CompletedCourses int         `json:"completedCourses" gorm:"default:0"`
	LastLogin        *time.Time  `json:"lastLogin"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
