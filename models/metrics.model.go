package models

import "time"

// Metrics is an immutable snapshot of aggregate platform figures, appended
// each time the dashboard aggregation runs.
type Metrics struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	TotalUsers     int64     `json:"totalUsers"`
	ActiveUsers    int64     `json:"activeUsers"`
	TotalCourses   int64     `json:"totalCourses"`
	ActiveCourses  int64     `json:"activeCourses"`
	CompletionRate float64   `json:"completionRate"`
	AverageGrade   float64   `json:"averageGrade"`
	CreatedAt      time.Time `json:"createdAt"`
}
