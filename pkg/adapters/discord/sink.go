package discord

import (
	"context"
	"fmt"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/bwmarrin/discordgo"
)

// Session is the subset of *discordgo.Session the adapter uses.
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseDelete(interaction *discordgo.Interaction, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Ensure *discordgo.Session satisfies Session
var _ Session = (*discordgo.Session)(nil)

// Sink posts prompts into Discord channels.
type Sink struct {
	session Session
}

// Ensure Sink implements ports.Sink
var _ ports.Sink = (*Sink)(nil)

// NewSink creates a sink over an open session.
func NewSink(session Session) *Sink {
	return &Sink{session: session}
}

// Post sends the prompt as a new message and returns its ID.
func (s *Sink) Post(ctx context.Context, channelID string, prompt domain.Prompt) (string, error) {
	msg, err := BuildMessage(prompt)
	if err != nil {
		return "", err
	}
	sent, err := s.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message to %s: %w", channelID, err)
	}
	return sent.ID, nil
}
