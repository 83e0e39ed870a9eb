package clubhistory

import (
	"fmt"
	"time"
)

// Achievements is owned 1:1 by a ClubHistory entry.
type Achievements struct {
	ID                     int64
	NumberOfMatches        int
	Goals                  int
	Assists                int
	AdditionalAchievements string
}

// ClubHistory is a past-club record on a player profile. It is strictly
// personal data and is purged when the owning account is deleted.
type ClubHistory struct {
	ID           int64
	PositionID   int
	ClubName     string
	League       string
	Region       string
	StartDate    time.Time
	EndDate      time.Time
	Achievements Achievements
	PlayerID     string
}

func (h ClubHistory) Validate() error {
	if h.PositionID <= 0 {
		return fmt.Errorf("position id is required")
	}
	if h.ClubName == "" {
		return fmt.Errorf("club name is required")
	}
	if h.League == "" {
		return fmt.Errorf("league is required")
	}
	if h.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if h.EndDate.Before(h.StartDate) {
		return fmt.Errorf("end date is before start date")
	}
	return nil
}
