package account

import "testing"

func TestCascadePlanCoversEveryKind(t *testing.T) {
	kinds := []EntityKind{
		KindAchievements,
		KindClubHistory,
		KindMessages,
		KindChats,
		KindProblems,
		KindFavoritePlayerAds,
		KindFavoriteClubAds,
		KindPlayerAdvertisement,
		KindClubAdvertisement,
		KindClubOffers,
		KindPlayerOffers,
		KindUser,
	}

	for _, kind := range kinds {
		if _, ok := PolicyFor(kind); !ok {
			t.Fatalf("kind %s has no declared policy", kind)
		}
	}
	if len(CascadePlan()) != len(kinds) {
		t.Fatalf("plan has %d steps, expected %d", len(CascadePlan()), len(kinds))
	}
}

func TestCascadePlanOrdering(t *testing.T) {
	index := make(map[EntityKind]int)
	for i, step := range CascadePlan() {
		index[step.Kind] = i
	}

	if index[KindClubHistory] >= index[KindAchievements] {
		t.Fatal("club histories must be purged before the achievements they reference")
	}
	if index[KindMessages] >= index[KindChats] {
		t.Fatal("messages must be purged before chats")
	}
	if index[KindUser] != len(CascadePlan())-1 {
		t.Fatal("user row must be deleted last")
	}

	lastReassign := -1
	firstPurge := len(CascadePlan())
	for i, step := range CascadePlan() {
		if step.Policy == PolicyReassign && i > lastReassign {
			lastReassign = i
		}
		if step.Policy == PolicyPurge && i < firstPurge {
			firstPurge = i
		}
	}
	if lastReassign >= firstPurge {
		t.Fatal("reassignments must run before purges")
	}
}

func TestPolicyFor_UnknownKind(t *testing.T) {
	if _, ok := PolicyFor(EntityKind("reports")); ok {
		t.Fatal("unknown kind must not resolve a policy")
	}
}
