package models

import "time"

// UserCourse is an enrollment linking one user to one course. The (user,
// course) pair is unique; progress reaching 100 implies Completed and EndDate.
type UserCourse struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID  uint       `json:"courseId" gorm:"not null;uniqueIndex:idx_user_course"`
	User      *User      `json:"user,omitempty"`
	Course    *Course    `json:"course,omitempty"`
	Progress  int        `json:"progress" gorm:"default:0"` // 0-100
	Completed bool       `json:"completed" gorm:"default:false"`
	Grade     *float64   `json:"grade"` // 0-10, optional
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
