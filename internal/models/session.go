package models

import "time"

type Session struct {
	ID             string        `gorm:"primaryKey;size:12" json:"id"`
	Name           string        `gorm:"size:100;not null" json:"name"`
	CreatedBy      string        `gorm:"size:100;not null" json:"created_by"`
	VotingSystem   string        `gorm:"size:30;not null;default:'fibonacci'" json:"voting_system"`
	CurrentStory   string        `gorm:"size:500" json:"current_story"`
	CurrentStoryID *uint         `gorm:"index" json:"current_story_id,omitempty"`
	Active         bool          `gorm:"not null;default:true" json:"active"`
	Revealed       bool          `gorm:"not null;default:false" json:"revealed"`
	Participants   []Participant `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Stories        []Story       `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"stories,omitempty"`
	Votes          []Vote        `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"votes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
