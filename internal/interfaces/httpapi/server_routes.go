package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/feet", handler.ListFeet)
}

// Browsing the market requires no identity; the lists are public.
func registerPublicMarketRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/player-advertisements", handler.ListPlayerAdvertisements)
	mux.HandleFunc("GET /v1/player-advertisements/count", handler.CountActivePlayerAdvertisements)
	mux.HandleFunc("GET /v1/player-advertisements/{advertisementID}", handler.GetPlayerAdvertisement)
	mux.HandleFunc("GET /v1/club-advertisements", handler.ListClubAdvertisements)
	mux.HandleFunc("GET /v1/club-advertisements/count", handler.CountActiveClubAdvertisements)
	mux.HandleFunc("GET /v1/club-advertisements/{advertisementID}", handler.GetClubAdvertisement)
	mux.HandleFunc("GET /v1/club-offers", handler.ListClubOffers)
	mux.HandleFunc("GET /v1/club-offers/count", handler.CountActiveClubOffers)
	mux.HandleFunc("GET /v1/club-offers/{offerID}", handler.GetClubOffer)
	mux.HandleFunc("GET /v1/player-offers", handler.ListPlayerOffers)
	mux.HandleFunc("GET /v1/player-offers/count", handler.CountActivePlayerOffers)
	mux.HandleFunc("GET /v1/player-offers/{offerID}", handler.GetPlayerOffer)
	mux.HandleFunc("GET /v1/players/{playerID}/club-history", handler.ListPlayerClubHistory)
}

func registerPersonalRoutes(mux *http.ServeMux, handler *Handler) {
	registerAdvertisementWriteRoutes(mux, handler)
	registerOfferWriteRoutes(mux, handler)
	registerFavoriteRoutes(mux, handler)
	registerProfileRoutes(mux, handler)
	registerChatRoutes(mux, handler)
}

func registerAdvertisementWriteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/player-advertisements", RequireUser(http.HandlerFunc(handler.CreatePlayerAdvertisement)))
	mux.Handle("PUT /v1/player-advertisements/{advertisementID}", RequireUser(http.HandlerFunc(handler.UpdatePlayerAdvertisement)))
	mux.Handle("POST /v1/player-advertisements/{advertisementID}/finish", RequireUser(http.HandlerFunc(handler.FinishPlayerAdvertisement)))
	mux.Handle("DELETE /v1/player-advertisements/{advertisementID}", RequireUser(http.HandlerFunc(handler.DeletePlayerAdvertisement)))
	mux.Handle("POST /v1/club-advertisements", RequireUser(http.HandlerFunc(handler.CreateClubAdvertisement)))
	mux.Handle("PUT /v1/club-advertisements/{advertisementID}", RequireUser(http.HandlerFunc(handler.UpdateClubAdvertisement)))
	mux.Handle("POST /v1/club-advertisements/{advertisementID}/finish", RequireUser(http.HandlerFunc(handler.FinishClubAdvertisement)))
	mux.Handle("DELETE /v1/club-advertisements/{advertisementID}", RequireUser(http.HandlerFunc(handler.DeleteClubAdvertisement)))
}

func registerOfferWriteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/club-offers", RequireUser(http.HandlerFunc(handler.CreateClubOffer)))
	mux.Handle("POST /v1/club-offers/{offerID}/accept", RequireUser(http.HandlerFunc(handler.AcceptClubOffer)))
	mux.Handle("POST /v1/club-offers/{offerID}/reject", RequireUser(http.HandlerFunc(handler.RejectClubOffer)))
	mux.Handle("DELETE /v1/club-offers/{offerID}", RequireUser(http.HandlerFunc(handler.DeleteClubOffer)))
	mux.Handle("GET /v1/player-advertisements/{advertisementID}/my-offer-status", RequireUser(http.HandlerFunc(handler.ClubOfferStatus)))
	mux.Handle("POST /v1/player-offers", RequireUser(http.HandlerFunc(handler.CreatePlayerOffer)))
	mux.Handle("POST /v1/player-offers/{offerID}/accept", RequireUser(http.HandlerFunc(handler.AcceptPlayerOffer)))
	mux.Handle("POST /v1/player-offers/{offerID}/reject", RequireUser(http.HandlerFunc(handler.RejectPlayerOffer)))
	mux.Handle("DELETE /v1/player-offers/{offerID}", RequireUser(http.HandlerFunc(handler.DeletePlayerOffer)))
	mux.Handle("GET /v1/club-advertisements/{advertisementID}/my-offer-status", RequireUser(http.HandlerFunc(handler.PlayerOfferStatus)))
}

func registerFavoriteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/favorites/player-advertisements", RequireUser(http.HandlerFunc(handler.AddPlayerAdvertisementFavorite)))
	mux.Handle("DELETE /v1/favorites/player-advertisements/{favoriteID}", RequireUser(http.HandlerFunc(handler.RemovePlayerAdvertisementFavorite)))
	mux.Handle("GET /v1/player-advertisements/{advertisementID}/favorite", RequireUser(http.HandlerFunc(handler.CheckPlayerAdvertisementFavorite)))
	mux.Handle("POST /v1/favorites/club-advertisements", RequireUser(http.HandlerFunc(handler.AddClubAdvertisementFavorite)))
	mux.Handle("DELETE /v1/favorites/club-advertisements/{favoriteID}", RequireUser(http.HandlerFunc(handler.RemoveClubAdvertisementFavorite)))
	mux.Handle("GET /v1/club-advertisements/{advertisementID}/favorite", RequireUser(http.HandlerFunc(handler.CheckClubAdvertisementFavorite)))
}

func registerProfileRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/me", RequireUser(http.HandlerFunc(handler.GetMyAccount)))
	mux.Handle("DELETE /v1/me", RequireUser(http.HandlerFunc(handler.DeleteMyAccount)))
	mux.Handle("GET /v1/me/club-history", RequireUser(http.HandlerFunc(handler.ListMyClubHistory)))
	mux.Handle("POST /v1/me/club-history", RequireUser(http.HandlerFunc(handler.CreateClubHistory)))
	mux.Handle("PUT /v1/me/club-history/{historyID}", RequireUser(http.HandlerFunc(handler.UpdateClubHistory)))
	mux.Handle("DELETE /v1/me/club-history/{historyID}", RequireUser(http.HandlerFunc(handler.DeleteClubHistory)))
	mux.Handle("POST /v1/problems", RequireUser(http.HandlerFunc(handler.ReportProblem)))
	mux.Handle("GET /v1/problems", RequireUser(http.HandlerFunc(handler.ListMyProblems)))
	mux.Handle("POST /v1/problems/{problemID}/solve", RequireUser(http.HandlerFunc(handler.MarkProblemSolved)))
}

func registerChatRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/chats", RequireUser(http.HandlerFunc(handler.OpenChat)))
	mux.Handle("GET /v1/chats", RequireUser(http.HandlerFunc(handler.ListMyChats)))
	mux.Handle("GET /v1/chats/{chatID}/messages", RequireUser(http.HandlerFunc(handler.ListChatMessages)))
	mux.Handle("POST /v1/messages", RequireUser(http.HandlerFunc(handler.SendMessage)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/expiry-digest", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunExpiryDigestJob)))
}
