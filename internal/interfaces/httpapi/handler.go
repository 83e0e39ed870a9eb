package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/domain/chat"
	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/domain/lookup"
	"github.com/footlink/transfer-market/internal/domain/offer"
	"github.com/footlink/transfer-market/internal/domain/support"
	"github.com/footlink/transfer-market/internal/platform/logging"
	"github.com/footlink/transfer-market/internal/usecase"
)

type Handler struct {
	advertisementService *usecase.AdvertisementService
	offerService         *usecase.OfferService
	favoriteService      *usecase.FavoriteService
	accountService       *usecase.AccountService
	clubHistoryService   *usecase.ClubHistoryService
	supportService       *usecase.SupportService
	chatService          *usecase.ChatService
	expiryDigestService  *usecase.ExpiryDigestService
	registry             lookup.Registry
	logger               *logging.Logger
	validator            *validator.Validate
}

func NewHandler(
	advertisementService *usecase.AdvertisementService,
	offerService *usecase.OfferService,
	favoriteService *usecase.FavoriteService,
	accountService *usecase.AccountService,
	clubHistoryService *usecase.ClubHistoryService,
	supportService *usecase.SupportService,
	chatService *usecase.ChatService,
	expiryDigestService *usecase.ExpiryDigestService,
	registry lookup.Registry,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		advertisementService: advertisementService,
		offerService:         offerService,
		favoriteService:      favoriteService,
		accountService:       accountService,
		clubHistoryService:   clubHistoryService,
		supportService:       supportService,
		chatService:          chatService,
		expiryDigestService:  expiryDigestService,
		registry:             registry,
		logger:               logger,
		validator:            validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createPlayerAdRequest struct {
	PositionID int     `json:"position_id" validate:"required,gt=0"`
	League     string  `json:"league" validate:"required,max=120"`
	Region     string  `json:"region" validate:"required,max=120"`
	Age        int     `json:"age" validate:"required,gt=0,lt=100"`
	Height     int     `json:"height" validate:"required,gt=0,lt=300"`
	FootID     int     `json:"foot_id" validate:"required,gt=0"`
	SalaryMin  float64 `json:"salary_min" validate:"gte=0"`
	SalaryMax  float64 `json:"salary_max" validate:"gte=0"`
}

type createClubAdRequest struct {
	PositionID int     `json:"position_id" validate:"required,gt=0"`
	ClubName   string  `json:"club_name" validate:"required,max=120"`
	League     string  `json:"league" validate:"required,max=120"`
	Region     string  `json:"region" validate:"required,max=120"`
	SalaryMin  float64 `json:"salary_min" validate:"gte=0"`
	SalaryMax  float64 `json:"salary_max" validate:"gte=0"`
}

type updatePlayerAdRequest struct {
	PositionID int     `json:"position_id" validate:"required,gt=0"`
	League     string  `json:"league" validate:"required,max=120"`
	Region     string  `json:"region" validate:"required,max=120"`
	Age        int     `json:"age" validate:"required,gt=0,lt=100"`
	Height     int     `json:"height" validate:"required,gt=0,lt=300"`
	FootID     int     `json:"foot_id" validate:"required,gt=0"`
	SalaryMin  float64 `json:"salary_min" validate:"gte=0"`
	SalaryMax  float64 `json:"salary_max" validate:"gte=0"`
}

type updateClubAdRequest struct {
	PositionID int     `json:"position_id" validate:"required,gt=0"`
	ClubName   string  `json:"club_name" validate:"required,max=120"`
	League     string  `json:"league" validate:"required,max=120"`
	Region     string  `json:"region" validate:"required,max=120"`
	SalaryMin  float64 `json:"salary_min" validate:"gte=0"`
	SalaryMax  float64 `json:"salary_max" validate:"gte=0"`
}

type createOfferRequest struct {
	AdvertisementID       int64   `json:"advertisement_id" validate:"required,gt=0"`
	PositionID            int     `json:"position_id" validate:"required,gt=0"`
	Salary                float64 `json:"salary" validate:"gte=0"`
	AdditionalInformation string  `json:"additional_information" validate:"max=2000"`
}

type addFavoriteRequest struct {
	AdvertisementID int64 `json:"advertisement_id" validate:"required,gt=0"`
}

type achievementsRequest struct {
	NumberOfMatches        int    `json:"number_of_matches" validate:"gte=0"`
	Goals                  int    `json:"goals" validate:"gte=0"`
	Assists                int    `json:"assists" validate:"gte=0"`
	AdditionalAchievements string `json:"additional_achievements" validate:"max=2000"`
}

type upsertClubHistoryRequest struct {
	PositionID   int                 `json:"position_id" validate:"required,gt=0"`
	ClubName     string              `json:"club_name" validate:"required,max=120"`
	League       string              `json:"league" validate:"required,max=120"`
	Region       string              `json:"region" validate:"required,max=120"`
	StartDate    string              `json:"start_date" validate:"required"`
	EndDate      string              `json:"end_date" validate:"required"`
	Achievements achievementsRequest `json:"achievements"`
}

type reportProblemRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=4000"`
}

type openChatRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,max=120"`
}

type sendMessageRequest struct {
	ChatID     int64  `json:"chat_id" validate:"required,gt=0"`
	ReceiverID string `json:"receiver_id" validate:"required,max=120"`
	Content    string `json:"content" validate:"required,max=4000"`
}

type salaryRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type playerAdvertisementDTO struct {
	ID           int64          `json:"id"`
	PositionID   int            `json:"position_id"`
	League       string         `json:"league"`
	Region       string         `json:"region"`
	Age          int            `json:"age"`
	Height       int            `json:"height"`
	FootID       int            `json:"foot_id"`
	SalaryRange  salaryRangeDTO `json:"salary_range"`
	CreationDate string         `json:"creation_date"`
	EndDate      string         `json:"end_date"`
	OwnerID      string         `json:"owner_id"`
}

type clubAdvertisementDTO struct {
	ID           int64          `json:"id"`
	PositionID   int            `json:"position_id"`
	ClubName     string         `json:"club_name"`
	League       string         `json:"league"`
	Region       string         `json:"region"`
	SalaryRange  salaryRangeDTO `json:"salary_range"`
	CreationDate string         `json:"creation_date"`
	EndDate      string         `json:"end_date"`
	OwnerID      string         `json:"owner_id"`
}

type clubOfferDTO struct {
	ID                    int64   `json:"id"`
	PlayerAdvertisementID int64   `json:"player_advertisement_id"`
	OfferStatusID         int     `json:"offer_status_id"`
	PositionID            int     `json:"position_id"`
	Salary                float64 `json:"salary"`
	AdditionalInformation string  `json:"additional_information,omitempty"`
	CreationDate          string  `json:"creation_date"`
	OffererID             string  `json:"offerer_id"`
}

type playerOfferDTO struct {
	ID                    int64   `json:"id"`
	ClubAdvertisementID   int64   `json:"club_advertisement_id"`
	OfferStatusID         int     `json:"offer_status_id"`
	PositionID            int     `json:"position_id"`
	Salary                float64 `json:"salary"`
	AdditionalInformation string  `json:"additional_information,omitempty"`
	CreationDate          string  `json:"creation_date"`
	OffererID             string  `json:"offerer_id"`
}

type favoriteDTO struct {
	ID              int64  `json:"id"`
	AdvertisementID int64  `json:"advertisement_id"`
	UserID          string `json:"user_id"`
}

type favoriteStatusDTO struct {
	FavoriteID int64 `json:"favorite_id"`
	IsFavorite bool  `json:"is_favorite"`
}

type offerStatusDTO struct {
	OfferStatusID int  `json:"offer_status_id"`
	HasOffer      bool `json:"has_offer"`
}

type achievementsDTO struct {
	NumberOfMatches        int    `json:"number_of_matches"`
	Goals                  int    `json:"goals"`
	Assists                int    `json:"assists"`
	AdditionalAchievements string `json:"additional_achievements,omitempty"`
}

type clubHistoryDTO struct {
	ID           int64           `json:"id"`
	PositionID   int             `json:"position_id"`
	ClubName     string          `json:"club_name"`
	League       string          `json:"league"`
	Region       string          `json:"region"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Achievements achievementsDTO `json:"achievements"`
	PlayerID     string          `json:"player_id"`
}

type problemDTO struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreationDate string `json:"creation_date"`
	IsSolved     bool   `json:"is_solved"`
	RequesterID  string `json:"requester_id"`
}

type chatDTO struct {
	ID      int64  `json:"id"`
	User1ID string `json:"user1_id"`
	User2ID string `json:"user2_id"`
}

type messageDTO struct {
	ID         int64  `json:"id"`
	ChatID     int64  `json:"chat_id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
}

type userDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
}

type lookupItemDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type countDTO struct {
	Count int `json:"count"`
}

type expiryDigestResultDTO struct {
	Scanned  int `json:"scanned"`
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}

func playerAdToDTO(v advertisement.PlayerAdvertisement) playerAdvertisementDTO {
	return playerAdvertisementDTO{
		ID:         v.ID,
		PositionID: v.PositionID,
		League:     v.League,
		Region:     v.Region,
		Age:        v.Age,
		Height:     v.Height,
		FootID:     v.FootID,
		SalaryRange: salaryRangeDTO{
			Min: v.SalaryRange.Min,
			Max: v.SalaryRange.Max,
		},
		CreationDate: v.CreationDate.UTC().Format(time.RFC3339),
		EndDate:      v.EndDate.UTC().Format(time.RFC3339),
		OwnerID:      v.OwnerID,
	}
}

func clubAdToDTO(v advertisement.ClubAdvertisement) clubAdvertisementDTO {
	return clubAdvertisementDTO{
		ID:         v.ID,
		PositionID: v.PositionID,
		ClubName:   v.ClubName,
		League:     v.League,
		Region:     v.Region,
		SalaryRange: salaryRangeDTO{
			Min: v.SalaryRange.Min,
			Max: v.SalaryRange.Max,
		},
		CreationDate: v.CreationDate.UTC().Format(time.RFC3339),
		EndDate:      v.EndDate.UTC().Format(time.RFC3339),
		OwnerID:      v.OwnerID,
	}
}

func clubOfferToDTO(v offer.ClubOffer) clubOfferDTO {
	return clubOfferDTO{
		ID:                    v.ID,
		PlayerAdvertisementID: v.PlayerAdvertisementID,
		OfferStatusID:         v.StatusID,
		PositionID:            v.PositionID,
		Salary:                v.Salary,
		AdditionalInformation: v.AdditionalInformation,
		CreationDate:          v.CreationDate.UTC().Format(time.RFC3339),
		OffererID:             v.OffererID,
	}
}

func playerOfferToDTO(v offer.PlayerOffer) playerOfferDTO {
	return playerOfferDTO{
		ID:                    v.ID,
		ClubAdvertisementID:   v.ClubAdvertisementID,
		OfferStatusID:         v.StatusID,
		PositionID:            v.PositionID,
		Salary:                v.Salary,
		AdditionalInformation: v.AdditionalInformation,
		CreationDate:          v.CreationDate.UTC().Format(time.RFC3339),
		OffererID:             v.OffererID,
	}
}

func playerAdFavoriteToDTO(v favorite.PlayerAdFavorite) favoriteDTO {
	return favoriteDTO{
		ID:              v.ID,
		AdvertisementID: v.AdvertisementID,
		UserID:          v.UserID,
	}
}

func clubAdFavoriteToDTO(v favorite.ClubAdFavorite) favoriteDTO {
	return favoriteDTO{
		ID:              v.ID,
		AdvertisementID: v.AdvertisementID,
		UserID:          v.UserID,
	}
}

func clubHistoryToDTO(v clubhistory.ClubHistory) clubHistoryDTO {
	return clubHistoryDTO{
		ID:         v.ID,
		PositionID: v.PositionID,
		ClubName:   v.ClubName,
		League:     v.League,
		Region:     v.Region,
		StartDate:  v.StartDate.UTC().Format(time.RFC3339),
		EndDate:    v.EndDate.UTC().Format(time.RFC3339),
		Achievements: achievementsDTO{
			NumberOfMatches:        v.Achievements.NumberOfMatches,
			Goals:                  v.Achievements.Goals,
			Assists:                v.Achievements.Assists,
			AdditionalAchievements: v.Achievements.AdditionalAchievements,
		},
		PlayerID: v.PlayerID,
	}
}

func problemToDTO(v support.Problem) problemDTO {
	return problemDTO{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		CreationDate: v.CreationDate.UTC().Format(time.RFC3339),
		IsSolved:     v.IsSolved,
		RequesterID:  v.RequesterID,
	}
}

func chatToDTO(v chat.Chat) chatDTO {
	return chatDTO{
		ID:      v.ID,
		User1ID: v.User1ID,
		User2ID: v.User2ID,
	}
}

func messageToDTO(v chat.Message) messageDTO {
	return messageDTO{
		ID:         v.ID,
		ChatID:     v.ChatID,
		SenderID:   v.SenderID,
		ReceiverID: v.ReceiverID,
		Content:    v.Content,
		Timestamp:  v.Timestamp.UTC().Format(time.RFC3339),
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseDateField(field, value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339 or YYYY-MM-DD", usecase.ErrInvalidInput, field)
}
