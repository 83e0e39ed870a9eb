package favorite

import "fmt"

// NoFavoriteID is the sentinel returned by pair lookups when no join row
// exists for (advertisement, user).
const NoFavoriteID = int64(0)

// PlayerAdFavorite bookmarks a player advertisement for a club user.
type PlayerAdFavorite struct {
	ID              int64
	AdvertisementID int64
	UserID          string
}

func (f PlayerAdFavorite) Validate() error {
	if f.AdvertisementID <= 0 {
		return fmt.Errorf("advertisement id is required")
	}
	if f.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

// ClubAdFavorite bookmarks a club advertisement for a player user.
type ClubAdFavorite struct {
	ID              int64
	AdvertisementID int64
	UserID          string
}

func (f ClubAdFavorite) Validate() error {
	if f.AdvertisementID <= 0 {
		return fmt.Errorf("advertisement id is required")
	}
	if f.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}
