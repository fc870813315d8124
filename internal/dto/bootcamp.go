package dto

import "time"

type CreateBootcampRequest struct {
	Name          string   `json:"name" binding:"required,max=50"`
	Description   string   `json:"description" binding:"required,max=500"`
	Website       string   `json:"website" binding:"omitempty,url"`
	Phone         string   `json:"phone" binding:"omitempty,max=20"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Address       string   `json:"address" binding:"required"`
	Zipcode       string   `json:"zipcode" binding:"required"`
	Careers       []string `json:"careers" binding:"required,dive,career"`
	AverageCost   float64  `json:"average_cost" binding:"omitempty,gte=0"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"job_assistance"`
	JobGuarantee  bool     `json:"job_guarantee"`
	AcceptGI      bool     `json:"accept_gi"`
}

type UpdateBootcampRequest struct {
	Name          string   `json:"name" binding:"omitempty,max=50"`
	Description   string   `json:"description" binding:"omitempty,max=500"`
	Website       string   `json:"website" binding:"omitempty,url"`
	Phone         string   `json:"phone" binding:"omitempty,max=20"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Address       string   `json:"address"`
	Careers       []string `json:"careers" binding:"omitempty,dive,career"`
	AverageCost   *float64 `json:"average_cost" binding:"omitempty,gte=0"`
	Housing       *bool    `json:"housing"`
	JobAssistance *bool    `json:"job_assistance"`
	JobGuarantee  *bool    `json:"job_guarantee"`
	AcceptGI      *bool    `json:"accept_gi"`
}

type BootcampResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name,omitempty"`
	Slug          string           `json:"slug,omitempty"`
	Description   string           `json:"description,omitempty"`
	Website       string           `json:"website,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Email         string           `json:"email,omitempty"`
	Address       string           `json:"address,omitempty"`
	Zipcode       string           `json:"zipcode,omitempty"`
	Latitude      float64          `json:"latitude,omitempty"`
	Longitude     float64          `json:"longitude,omitempty"`
	Careers       []string         `json:"careers,omitempty"`
	AverageCost   float64          `json:"average_cost,omitempty"`
	Housing       bool             `json:"housing"`
	JobAssistance bool             `json:"job_assistance"`
	JobGuarantee  bool             `json:"job_guarantee"`
	AcceptGI      bool             `json:"accept_gi"`
	Photo         string           `json:"photo,omitempty"`
	Courses       []CourseResponse `json:"courses,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PhotoUpload carries an incoming file past the transport layer so the
// service can validate it without touching multipart plumbing.
type PhotoUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     ReadOpener
}
