package offer

import (
	"fmt"
	"time"
)

// ClubOffer is a club's response to a player advertisement.
type ClubOffer struct {
	ID                    int64
	PlayerAdvertisementID int64
	StatusID              int
	PositionID            int
	Salary                float64
	AdditionalInformation string
	CreationDate          time.Time
	OffererID             string
}

func (o ClubOffer) Validate() error {
	if o.PlayerAdvertisementID <= 0 {
		return fmt.Errorf("player advertisement id is required")
	}
	if o.PositionID <= 0 {
		return fmt.Errorf("position id is required")
	}
	if o.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	if o.OffererID == "" {
		return fmt.Errorf("offerer id is required")
	}
	return nil
}

// PlayerOffer is a player's response to a club advertisement.
type PlayerOffer struct {
	ID                    int64
	ClubAdvertisementID   int64
	StatusID              int
	PositionID            int
	Salary                float64
	AdditionalInformation string
	CreationDate          time.Time
	OffererID             string
}

func (o PlayerOffer) Validate() error {
	if o.ClubAdvertisementID <= 0 {
		return fmt.Errorf("club advertisement id is required")
	}
	if o.PositionID <= 0 {
		return fmt.Errorf("position id is required")
	}
	if o.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	if o.OffererID == "" {
		return fmt.Errorf("offerer id is required")
	}
	return nil
}
