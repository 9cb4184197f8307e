package events

import "time"

// Topics shared between the contest clock, the admin handlers and any other
// running instance of the service.
const (
	// ContestSettingsUpdated carries the new contest end time after an admin
	// update, so every clock re-reads without a restart.
	ContestSettingsUpdated = "contest.settings.updated"

	// ContestEnded fires exactly once per end-of-contest transition.
	ContestEnded = "contest.ended"
)

// ContestSettingsUpdatedPayload is published on ContestSettingsUpdated.
type ContestSettingsUpdatedPayload struct {
	EndTime time.Time `json:"end_time"`
}

// Standing is one artwork's aggregate at a point in time.
type Standing struct {
	ArtworkID  string `json:"artwork_id"`
	TotalScore int    `json:"total_score"`
	VoteCount  int    `json:"vote_count"`
}

// ContestEndedPayload is published on ContestEnded. WinnerArtworkID is empty
// when no ratings existed at resolution time.
type ContestEndedPayload struct {
	EndTime         time.Time  `json:"end_time"`
	WinnerArtworkID string     `json:"winner_artwork_id,omitempty"`
	WinnerScore     int        `json:"winner_score"`
	Standings       []Standing `json:"standings"`
}
