package handlers

import "github.com/verstuyftj/ScrumPointPlanner/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type Session = models.Session
type Participant = models.Participant
type Story = models.Story
type Vote = models.Vote
