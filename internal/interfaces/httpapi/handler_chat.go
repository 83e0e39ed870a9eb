package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/domain/chat"
	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) OpenChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenChat")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req openChatRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	opened, err := h.chatService.Open(ctx, userID, req.ParticipantID)
	if err != nil {
		h.logger.WarnContext(ctx, "open chat failed", "user_id", userID, "participant_id", req.ParticipantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, chatToDTO(opened))
}

func (h *Handler) ListMyChats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyChats")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.chatService.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list chats failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]chatDTO, 0, len(items))
	for _, item := range items {
		out = append(out, chatToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendMessage")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req sendMessageRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sent, err := h.chatService.Send(ctx, chat.Message{
		ChatID:     req.ChatID,
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "send message failed", "chat_id", req.ChatID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, messageToDTO(sent))
}

func (h *Handler) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChatMessages")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	chatID, err := pathID(r, "chatID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	chats, err := h.chatService.ListByUser(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	participant := false
	for _, c := range chats {
		if c.ID == chatID {
			participant = true
			break
		}
	}
	if !participant {
		writeError(ctx, w, fmt.Errorf("%w: chat %d", usecase.ErrNotFound, chatID))
		return
	}

	items, err := h.chatService.Messages(ctx, chatID)
	if err != nil {
		h.logger.WarnContext(ctx, "list chat messages failed", "chat_id", chatID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]messageDTO, 0, len(items))
	for _, item := range items {
		out = append(out, messageToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
