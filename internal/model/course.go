package model

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	BootcampID           uint    `gorm:"column:bootcamp_id;index;not null"`
	Title                string  `gorm:"column:title;not null"`
	Description          string  `gorm:"column:description;not null"`
	Weeks                int     `gorm:"column:weeks;not null"`
	Tuition              float64 `gorm:"column:tuition;not null"`
	MinimumSkill         string  `gorm:"column:minimum_skill;not null"`
	ScholarshipAvailable bool    `gorm:"column:scholarship_available;default:false"`
}
