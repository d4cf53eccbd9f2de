package models

type Story struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SessionID string `gorm:"size:12;not null;index" json:"session_id"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Link      string `gorm:"size:500" json:"link"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
}
