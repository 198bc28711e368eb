package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
)

const activeMessagesKey = "messages:active"

// BroadcastService publishes admin messages and serves the active list.
type BroadcastService struct {
	messageRepo repository.AdminMessageRepository
	cache       *cache.Cache
	log         zerolog.Logger
}

// NewBroadcastService creates a new BroadcastService. The active list is
// cached for ttl; a zero ttl disables the cache.
func NewBroadcastService(messageRepo repository.AdminMessageRepository, ttl time.Duration, log zerolog.Logger) *BroadcastService {
	s := &BroadcastService{
		messageRepo: messageRepo,
		log:         log.With().Str("service", "broadcast").Logger(),
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

// PublishInput represents input for publishing an admin message
type PublishInput struct {
	Title       string
	Content     string
	MessageType models.MessageType
	CreatorID   string
}

// Publish stores an active message and drops the cached list.
func (s *BroadcastService) Publish(ctx context.Context, input PublishInput) (*models.AdminMessage, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrMessageFieldsRequired
	}

	messageType := input.MessageType
	if messageType == "" {
		messageType = models.MessageTypeAnnouncement
	}
	if !messageType.IsValid() {
		return nil, ErrInvalidMessageType
	}

	message := &models.AdminMessage{
		Title:       title,
		Content:     content,
		MessageType: messageType,
		IsActive:    true,
		CreatedBy:   input.CreatorID,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create admin message: %w", err)
	}
	if s.cache != nil {
		s.cache.Delete(activeMessagesKey)
	}

	s.log.Info().Str("message_id", message.ID).Str("type", string(messageType)).Str("created_by", input.CreatorID).Msg("message published")
	return message, nil
}

// ListActive returns active messages, newest first.
func (s *BroadcastService) ListActive(ctx context.Context) ([]models.AdminMessage, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(activeMessagesKey); ok {
			return cached.([]models.AdminMessage), nil
		}
	}

	messages, err := s.messageRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin messages: %w", err)
	}

	if s.cache != nil {
		s.cache.SetDefault(activeMessagesKey, messages)
	}
	return messages, nil
}
