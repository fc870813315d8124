package dto

import "time"

type CreateCourseRequest struct {
	Title                string  `json:"title" binding:"required,max=100"`
	Description          string  `json:"description" binding:"required"`
	Weeks                int     `json:"weeks" binding:"required,gte=1"`
	Tuition              float64 `json:"tuition" binding:"required,gte=0"`
	MinimumSkill         string  `json:"minimum_skill" binding:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool    `json:"scholarship_available"`
}

type CourseResponse struct {
	ID                   uint      `json:"id"`
	BootcampID           uint      `json:"bootcamp_id,omitempty"`
	Title                string    `json:"title,omitempty"`
	Description          string    `json:"description,omitempty"`
	Weeks                int       `json:"weeks,omitempty"`
	Tuition              float64   `json:"tuition,omitempty"`
	MinimumSkill         string    `json:"minimum_skill,omitempty"`
	ScholarshipAvailable bool      `json:"scholarship_available"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
