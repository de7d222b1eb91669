package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/LiteBots/VelorieMarket/domain"
)

// DiscordServiceImpl implements domain.Notifier over the Discord REST API.
type DiscordServiceImpl struct {
	session *discordgo.Session
	logger  *slog.Logger
}

// NewDiscordService creates a Discord-backed notifier. With an empty token
// it runs in log-only mode, which keeps local development working without
// bot credentials.
func NewDiscordService(token string, logger *slog.Logger) (domain.Notifier, error) {
	if token == "" {
		logger.Warn("discord token not configured, notifier running in log-only mode")
		return &DiscordServiceImpl{logger: logger}, nil
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &DiscordServiceImpl{session: session, logger: logger}, nil
}

// SendDirect implements domain.Notifier
func (d *DiscordServiceImpl) SendDirect(ctx context.Context, recipientID, message string) error {
	if d.session == nil {
		d.logger.Info("[MOCK DM]", "to", recipientID, "message", message)
		return nil
	}

	channel, err := d.session.UserChannelCreate(recipientID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel with %s: %w", recipientID, err)
	}

	if _, err := d.session.ChannelMessageSend(channel.ID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send DM to %s: %w", recipientID, err)
	}

	return nil
}

// SendToChannel implements domain.Notifier
func (d *DiscordServiceImpl) SendToChannel(ctx context.Context, channelID, message string) error {
	if d.session == nil {
		d.logger.Info("[MOCK CHANNEL POST]", "channel", channelID, "message", message)
		return nil
	}

	if _, err := d.session.ChannelMessageSend(channelID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post to channel %s: %w", channelID, err)
	}

	return nil
}

// RenameChannel implements domain.Notifier
func (d *DiscordServiceImpl) RenameChannel(ctx context.Context, channelID, name string) error {
	if d.session == nil {
		d.logger.Info("[MOCK CHANNEL RENAME]", "channel", channelID, "name", name)
		return nil
	}

	if _, err := d.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to rename channel %s: %w", channelID, err)
	}

	return nil
}
