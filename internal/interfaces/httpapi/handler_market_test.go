package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
	"github.com/footlink/transfer-market/internal/platform/logging"
	"github.com/footlink/transfer-market/internal/usecase"
)

const testJobToken = "job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	registry := memory.SeedLookupRegistry()

	playerAds := memory.NewPlayerAdvertisementRepository(store)
	clubAds := memory.NewClubAdvertisementRepository(store)
	clubOffers := memory.NewClubOfferRepository(store)
	playerOffers := memory.NewPlayerOfferRepository(store)

	advertisementService := usecase.NewAdvertisementService(playerAds, clubAds, registry, nil)
	offerService := usecase.NewOfferService(clubOffers, playerOffers, playerAds, clubAds, registry, nil, nil)
	favoriteService := usecase.NewFavoriteService(
		memory.NewPlayerAdFavoriteRepository(store),
		memory.NewClubAdFavoriteRepository(store),
		playerAds,
		clubAds,
		nil,
	)
	accountService := usecase.NewAccountService(memory.NewAccountRepository(store), "unknown-user", nil)
	historyService := usecase.NewClubHistoryService(memory.NewClubHistoryRepository(store), registry, nil)
	supportService := usecase.NewSupportService(memory.NewProblemRepository(store), nil)
	chatService := usecase.NewChatService(memory.NewChatRepository(store), nil)
	expiryService := usecase.NewExpiryDigestService(playerAds, clubAds, nil, 72*time.Hour, nil)

	handler := NewHandler(
		advertisementService,
		offerService,
		favoriteService,
		accountService,
		historyService,
		supportService,
		chatService,
		expiryService,
		registry,
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), nil, testJobToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestHealthzRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestCreatePlayerAdvertisementRequiresIdentity(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/player-advertisements", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestPlayerAdvertisementLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"position_id": 1,
		"league": "Ekstraklasa",
		"region": "Lesser Poland",
		"age": 24,
		"height": 183,
		"foot_id": 1,
		"salary_min": 4000,
		"salary_max": 9000
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/player-advertisements", strings.NewReader(payload))
	req.Header.Set("X-User-Id", "player-ana")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if got, _ := data["owner_id"].(string); got != "player-ana" {
		t.Fatalf("owner_id = %q", got)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/v1/player-advertisements?state=active", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("list: expected status 200, got %d", listRec.Code)
	}
	listBody := decodeEnvelope(t, listRec)
	items, ok := listBody["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one active advertisement, got %v", listBody["data"])
	}
}

func TestUpdatePlayerAdvertisementRejectsForeignOwner(t *testing.T) {
	router := newTestRouter(t)

	createPayload := `{
		"position_id": 1,
		"league": "Ekstraklasa",
		"region": "Lesser Poland",
		"age": 24,
		"height": 183,
		"foot_id": 1,
		"salary_min": 4000,
		"salary_max": 9000
	}`
	createReq := httptest.NewRequest(http.MethodPost, "/v1/player-advertisements", strings.NewReader(createPayload))
	createReq.Header.Set("X-User-Id", "player-ana")
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, createReq)
	if createRec.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", createRec.Code)
	}

	updateReq := httptest.NewRequest(http.MethodPut, "/v1/player-advertisements/1", strings.NewReader(createPayload))
	updateReq.Header.Set("X-User-Id", "someone-else")
	updateRec := httptest.NewRecorder()
	router.ServeHTTP(updateRec, updateReq)

	if updateRec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", updateRec.Code)
	}
}

func TestGetPlayerAdvertisementNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/player-advertisements/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestExpiryDigestJobRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/expiry-digest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	authedReq := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/expiry-digest", nil)
	authedReq.Header.Set("X-Internal-Job-Token", testJobToken)
	authedRec := httptest.NewRecorder()
	router.ServeHTTP(authedRec, authedReq)
	if authedRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d body=%s", authedRec.Code, authedRec.Body.String())
	}
}

func TestOfferStatusLookupOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	createAd := `{
		"position_id": 1,
		"league": "Ekstraklasa",
		"region": "Lesser Poland",
		"age": 24,
		"height": 183,
		"foot_id": 1,
		"salary_min": 4000,
		"salary_max": 9000
	}`
	adReq := httptest.NewRequest(http.MethodPost, "/v1/player-advertisements", strings.NewReader(createAd))
	adReq.Header.Set("X-User-Id", "player-ana")
	adRec := httptest.NewRecorder()
	router.ServeHTTP(adRec, adReq)
	if adRec.Code != http.StatusCreated {
		t.Fatalf("create ad: expected status 201, got %d", adRec.Code)
	}

	createOffer := `{
		"advertisement_id": 1,
		"position_id": 1,
		"salary": 7500,
		"additional_information": "two year contract"
	}`
	offerReq := httptest.NewRequest(http.MethodPost, "/v1/club-offers", strings.NewReader(createOffer))
	offerReq.Header.Set("X-User-Id", "club-borussia")
	offerRec := httptest.NewRecorder()
	router.ServeHTTP(offerRec, offerReq)
	if offerRec.Code != http.StatusCreated {
		t.Fatalf("create offer: expected status 201, got %d body=%s", offerRec.Code, offerRec.Body.String())
	}

	statusReq := httptest.NewRequest(http.MethodGet, "/v1/player-advertisements/1/my-offer-status", nil)
	statusReq.Header.Set("X-User-Id", "club-borussia")
	statusRec := httptest.NewRecorder()
	router.ServeHTTP(statusRec, statusReq)
	if statusRec.Code != http.StatusOK {
		t.Fatalf("offer status: expected status 200, got %d", statusRec.Code)
	}

	statusBody := decodeEnvelope(t, statusRec)
	data, ok := statusBody["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", statusBody)
	}
	if hasOffer, _ := data["has_offer"].(bool); !hasOffer {
		t.Fatalf("expected has_offer=true, got %v", data)
	}
}
