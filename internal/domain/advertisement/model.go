package advertisement

import (
	"fmt"
	"time"
)

// SalaryRange is owned 1:1 by exactly one advertisement and is created and
// deleted together with it.
type SalaryRange struct {
	ID  int64
	Min float64
	Max float64
}

func (s SalaryRange) Validate() error {
	if s.Min < 0 {
		return fmt.Errorf("salary min cannot be negative")
	}
	if s.Max < s.Min {
		return fmt.Errorf("salary max %.2f is below min %.2f", s.Max, s.Min)
	}
	return nil
}

// PlayerAdvertisement is a player-seeking-club posting.
type PlayerAdvertisement struct {
	ID           int64
	PositionID   int
	League       string
	Region       string
	Age          int
	Height       int
	FootID       int
	SalaryRange  SalaryRange
	CreationDate time.Time
	EndDate      time.Time
	OwnerID      string
}

// Active reports whether the posting still accepts offers. There is no
// stored flag; finishing an advertisement early sets EndDate to now.
func (a PlayerAdvertisement) Active(now time.Time) bool {
	return !a.EndDate.Before(now)
}

func (a PlayerAdvertisement) Validate() error {
	if a.PositionID <= 0 {
		return fmt.Errorf("position id is required")
	}
	if a.FootID <= 0 {
		return fmt.Errorf("foot id is required")
	}
	if a.League == "" {
		return fmt.Errorf("league is required")
	}
	if a.Region == "" {
		return fmt.Errorf("region is required")
	}
	if a.Age <= 0 {
		return fmt.Errorf("age must be greater than zero")
	}
	if a.Height <= 0 {
		return fmt.Errorf("height must be greater than zero")
	}
	if a.OwnerID == "" {
		return fmt.Errorf("owner id is required")
	}
	return a.SalaryRange.Validate()
}

// ClubAdvertisement is a club-seeking-player posting.
type ClubAdvertisement struct {
	ID           int64
	PositionID   int
	ClubName     string
	League       string
	Region       string
	SalaryRange  SalaryRange
	CreationDate time.Time
	EndDate      time.Time
	OwnerID      string
}

func (a ClubAdvertisement) Active(now time.Time) bool {
	return !a.EndDate.Before(now)
}

func (a ClubAdvertisement) Validate() error {
	if a.PositionID <= 0 {
		return fmt.Errorf("position id is required")
	}
	if a.ClubName == "" {
		return fmt.Errorf("club name is required")
	}
	if a.League == "" {
		return fmt.Errorf("league is required")
	}
	if a.Region == "" {
		return fmt.Errorf("region is required")
	}
	if a.OwnerID == "" {
		return fmt.Errorf("owner id is required")
	}
	return a.SalaryRange.Validate()
}
