package models

type Vote struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SessionID     string `gorm:"size:12;not null;uniqueIndex:idx_vote_unique" json:"session_id"`
	ParticipantID uint   `gorm:"not null;uniqueIndex:idx_vote_unique" json:"participant_id"`
	Value         string `gorm:"size:10;not null" json:"value"`
	StoryID       *uint  `gorm:"index" json:"story_id,omitempty"`
}
