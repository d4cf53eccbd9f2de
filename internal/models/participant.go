package models

import "time"

type Participant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  string    `gorm:"size:12;not null;index" json:"session_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	IsAdmin    bool      `gorm:"not null;default:false" json:"is_admin"`
	Connected  bool      `gorm:"not null;default:true" json:"connected"`
	LastActive time.Time `json:"last_active"`
}
