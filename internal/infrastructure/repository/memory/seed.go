package memory

import "github.com/footlink/transfer-market/internal/domain/lookup"

// Fixed reference ids used by the dev wiring and tests. They mirror the
// seed migration so status ids line up across backends.
const (
	StatusIDOffered  = 1
	StatusIDAccepted = 2
	StatusIDRejected = 3
)

func SeedPositions() []lookup.Position {
	return []lookup.Position{
		{ID: 1, Name: "Goalkeeper"},
		{ID: 2, Name: "RightBack"},
		{ID: 3, Name: "CenterBack"},
		{ID: 4, Name: "LeftBack"},
		{ID: 5, Name: "DefensiveMidfield"},
		{ID: 6, Name: "CentralMidfield"},
		{ID: 7, Name: "AttackingMidfield"},
		{ID: 8, Name: "RightWinger"},
		{ID: 9, Name: "LeftWinger"},
		{ID: 10, Name: "Striker"},
	}
}

func SeedFeet() []lookup.Foot {
	return []lookup.Foot{
		{ID: 1, Name: "Left"},
		{ID: 2, Name: "Right"},
		{ID: 3, Name: "TwoFooted"},
	}
}

func SeedOfferStatuses() []lookup.OfferStatus {
	return []lookup.OfferStatus{
		{ID: StatusIDOffered, Name: lookup.StatusOffered},
		{ID: StatusIDAccepted, Name: lookup.StatusAccepted},
		{ID: StatusIDRejected, Name: lookup.StatusRejected},
	}
}

func SeedLookupRegistry() *LookupRegistry {
	return NewLookupRegistry(SeedPositions(), SeedFeet(), SeedOfferStatuses())
}
