package account

// Policy is the per-entity-kind treatment applied when an account is
// deleted. Strictly personal rows are purged; rows a counterparty relied
// on (advertisements, offers) keep existing with their ownership edge
// reassigned to the sentinel account.
type Policy int

const (
	// PolicyPurge hard-deletes every row the user owns of that kind.
	PolicyPurge Policy = iota
	// PolicyReassign rewrites the ownership column to the sentinel
	// account id, leaving the row visible to counterparties.
	PolicyReassign
)

func (p Policy) String() string {
	switch p {
	case PolicyPurge:
		return "purge"
	case PolicyReassign:
		return "reassign"
	default:
		return "unknown"
	}
}

// EntityKind tags every kind of row the cascade has to resolve. New kinds
// must be added to CascadePlan explicitly; there is no default policy.
type EntityKind string

const (
	KindAchievements        EntityKind = "achievements"
	KindClubHistory         EntityKind = "club_history"
	KindMessages            EntityKind = "messages"
	KindChats               EntityKind = "chats"
	KindProblems            EntityKind = "problems"
	KindFavoritePlayerAds   EntityKind = "favorite_player_advertisements"
	KindFavoriteClubAds     EntityKind = "favorite_club_advertisements"
	KindPlayerAdvertisement EntityKind = "player_advertisements"
	KindClubAdvertisement   EntityKind = "club_advertisements"
	KindClubOffers          EntityKind = "club_offers"
	KindPlayerOffers        EntityKind = "player_offers"
	KindUser                EntityKind = "user"
)

// CascadeStep is one resolved entry of the deletion plan.
type CascadeStep struct {
	Kind   EntityKind
	Policy Policy
}

// CascadePlan returns the ordered steps applied when deleting an account.
// Order is binding: referencing rows before the rows they point at. A club
// history row carries the foreign key to its achievements row, so histories
// are purged first and the achievements they referenced right after; the
// history step is expected to record which achievements it orphaned.
// Messages go before their chats, reassignments before any purge that could
// touch them, and the user row strictly last.
func CascadePlan() []CascadeStep {
	return []CascadeStep{
		{Kind: KindPlayerAdvertisement, Policy: PolicyReassign},
		{Kind: KindClubAdvertisement, Policy: PolicyReassign},
		{Kind: KindClubOffers, Policy: PolicyReassign},
		{Kind: KindPlayerOffers, Policy: PolicyReassign},
		{Kind: KindClubHistory, Policy: PolicyPurge},
		{Kind: KindAchievements, Policy: PolicyPurge},
		{Kind: KindMessages, Policy: PolicyPurge},
		{Kind: KindChats, Policy: PolicyPurge},
		{Kind: KindProblems, Policy: PolicyPurge},
		{Kind: KindFavoritePlayerAds, Policy: PolicyPurge},
		{Kind: KindFavoriteClubAds, Policy: PolicyPurge},
		{Kind: KindUser, Policy: PolicyPurge},
	}
}

// PolicyFor resolves the declared policy for a kind.
func PolicyFor(kind EntityKind) (Policy, bool) {
	for _, step := range CascadePlan() {
		if step.Kind == kind {
			return step.Policy, true
		}
	}
	return PolicyPurge, false
}
