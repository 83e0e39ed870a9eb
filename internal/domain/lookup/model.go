package lookup

// Position is a football position reference row (e.g. Goalkeeper, Striker).
type Position struct {
	ID   int
	Name string
}

// Foot is a preferred-foot reference row.
type Foot struct {
	ID   int
	Name string
}

// OfferStatus is a reference row for the offer state machine.
type OfferStatus struct {
	ID   int
	Name string
}

// Offer status names as stored in the reference table. Offered is the
// initial state; Accepted and Rejected are terminal.
const (
	StatusOffered  = "Offered"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// NoOfferStatusID is returned where a status id is requested for a pair
// that has no offer yet.
const NoOfferStatusID = 0
