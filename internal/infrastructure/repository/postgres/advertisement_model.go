package postgres

import (
	"time"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
)

type playerAdvertisementTableModel struct {
	ID            int64     `db:"id"`
	PositionID    int       `db:"position_id"`
	League        string    `db:"league"`
	Region        string    `db:"region"`
	Age           int       `db:"age"`
	Height        int       `db:"height"`
	FootID        int       `db:"foot_id"`
	SalaryRangeID int64     `db:"salary_range_id"`
	SalaryMin     float64   `db:"salary_min"`
	SalaryMax     float64   `db:"salary_max"`
	CreationDate  time.Time `db:"creation_date"`
	EndDate       time.Time `db:"end_date"`
	OwnerID       string    `db:"owner_id"`
}

func (m playerAdvertisementTableModel) toDomain() advertisement.PlayerAdvertisement {
	return advertisement.PlayerAdvertisement{
		ID:         m.ID,
		PositionID: m.PositionID,
		League:     m.League,
		Region:     m.Region,
		Age:        m.Age,
		Height:     m.Height,
		FootID:     m.FootID,
		SalaryRange: advertisement.SalaryRange{
			ID:  m.SalaryRangeID,
			Min: m.SalaryMin,
			Max: m.SalaryMax,
		},
		CreationDate: m.CreationDate,
		EndDate:      m.EndDate,
		OwnerID:      m.OwnerID,
	}
}

type clubAdvertisementTableModel struct {
	ID            int64     `db:"id"`
	PositionID    int       `db:"position_id"`
	ClubName      string    `db:"club_name"`
	League        string    `db:"league"`
	Region        string    `db:"region"`
	SalaryRangeID int64     `db:"salary_range_id"`
	SalaryMin     float64   `db:"salary_min"`
	SalaryMax     float64   `db:"salary_max"`
	CreationDate  time.Time `db:"creation_date"`
	EndDate       time.Time `db:"end_date"`
	OwnerID       string    `db:"owner_id"`
}

func (m clubAdvertisementTableModel) toDomain() advertisement.ClubAdvertisement {
	return advertisement.ClubAdvertisement{
		ID:         m.ID,
		PositionID: m.PositionID,
		ClubName:   m.ClubName,
		League:     m.League,
		Region:     m.Region,
		SalaryRange: advertisement.SalaryRange{
			ID:  m.SalaryRangeID,
			Min: m.SalaryMin,
			Max: m.SalaryMax,
		},
		CreationDate: m.CreationDate,
		EndDate:      m.EndDate,
		OwnerID:      m.OwnerID,
	}
}
