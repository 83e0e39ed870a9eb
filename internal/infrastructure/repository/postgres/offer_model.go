package postgres

import (
	"time"

	"github.com/footlink/transfer-market/internal/domain/offer"
)

type clubOfferTableModel struct {
	ID                    int64     `db:"id"`
	PlayerAdvertisementID int64     `db:"player_advertisement_id"`
	OfferStatusID         int       `db:"offer_status_id"`
	PositionID            int       `db:"position_id"`
	Salary                float64   `db:"salary"`
	AdditionalInformation string    `db:"additional_information"`
	CreationDate          time.Time `db:"creation_date"`
	OffererID             string    `db:"offerer_id"`
}

func (m clubOfferTableModel) toDomain() offer.ClubOffer {
	return offer.ClubOffer{
		ID:                    m.ID,
		PlayerAdvertisementID: m.PlayerAdvertisementID,
		StatusID:              m.OfferStatusID,
		PositionID:            m.PositionID,
		Salary:                m.Salary,
		AdditionalInformation: m.AdditionalInformation,
		CreationDate:          m.CreationDate,
		OffererID:             m.OffererID,
	}
}

type playerOfferTableModel struct {
	ID                    int64     `db:"id"`
	ClubAdvertisementID   int64     `db:"club_advertisement_id"`
	OfferStatusID         int       `db:"offer_status_id"`
	PositionID            int       `db:"position_id"`
	Salary                float64   `db:"salary"`
	AdditionalInformation string    `db:"additional_information"`
	CreationDate          time.Time `db:"creation_date"`
	OffererID             string    `db:"offerer_id"`
}

func (m playerOfferTableModel) toDomain() offer.PlayerOffer {
	return offer.PlayerOffer{
		ID:                    m.ID,
		ClubAdvertisementID:   m.ClubAdvertisementID,
		StatusID:              m.OfferStatusID,
		PositionID:            m.PositionID,
		Salary:                m.Salary,
		AdditionalInformation: m.AdditionalInformation,
		CreationDate:          m.CreationDate,
		OffererID:             m.OffererID,
	}
}
