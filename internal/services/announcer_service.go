package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LiteBots/VelorieMarket/domain"
)

// AnnouncerServiceImpl implements domain.Announcer. It renames a public
// Discord channel so its name shows the registered member count, once at
// startup and then on a fixed interval. Discord rate-limits channel renames
// to two per ten minutes, so unchanged counts produce no API call.
type AnnouncerServiceImpl struct {
	userRepo  domain.UserRepository
	notifier  domain.Notifier
	logger    *slog.Logger
	channelID string
	interval  time.Duration

	lastName string
}

// NewAnnouncerService creates a new member-count announcer
func NewAnnouncerService(userRepo domain.UserRepository, notifier domain.Notifier, logger *slog.Logger, channelID string, interval time.Duration) *AnnouncerServiceImpl {
	return &AnnouncerServiceImpl{
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
		channelID: channelID,
		interval:  interval,
	}
}

// Start runs the update loop until ctx is cancelled. Errors are logged and
// the loop keeps going.
func (s *AnnouncerServiceImpl) Start(ctx context.Context) {
	if s.channelID == "" {
		s.logger.Info("stats channel not configured, announcer disabled")
		return
	}

	if err := s.UpdateOnce(ctx); err != nil {
		s.logger.Warn("member count update failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.UpdateOnce(ctx); err != nil {
				s.logger.Warn("member count update failed", "error", err)
			}
		}
	}
}

// UpdateOnce counts users and renames the stats channel if the rendered
// name changed since the last update.
func (s *AnnouncerServiceImpl) UpdateOnce(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	name := fmt.Sprintf("🚀〢Registered: %d", count)
	if name == s.lastName {
		return nil
	}

	if err := s.notifier.RenameChannel(ctx, s.channelID, name); err != nil {
		return fmt.Errorf("failed to rename stats channel: %w", err)
	}

	s.lastName = name
	s.logger.Info("updated member count channel", "name", name)
	return nil
}
