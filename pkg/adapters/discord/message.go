package discord

import (
	"fmt"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/bwmarrin/discordgo"
)

// EmbedColor is the accent of menu cards (blue).
const EmbedColor = 0x3498db

// BuildMessage converts a prompt into a Discord message.
func BuildMessage(p domain.Prompt) (*discordgo.MessageSend, error) {
	switch p.Kind {
	case domain.PromptMessage:
		if n := textLen(p.Body); n > maxContentLen {
			return nil, fmt.Errorf("%w: message is %d characters", ErrPromptTooLarge, n)
		}
		return &discordgo.MessageSend{Content: p.Body}, nil

	case domain.PromptCard:
		if textLen(p.Title) > maxTitleLen || textLen(p.Body) > maxDescLen {
			return nil, fmt.Errorf("%w: embed title or description too long", ErrPromptTooLarge)
		}
		rows, err := buildRows(p.Actions)
		if err != nil {
			return nil, err
		}
		return &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       p.Title,
				Description: p.Body,
				Color:       EmbedColor,
			}},
			Components: rows,
		}, nil

	default:
		return nil, fmt.Errorf("unknown prompt kind %q", p.Kind)
	}
}

func buildRows(actions []domain.Action) ([]discordgo.MessageComponent, error) {
	if len(actions) > maxButtonsPerRow*maxRows {
		return nil, fmt.Errorf("%w: %d actions, at most %d fit", ErrPromptTooLarge, len(actions), maxButtonsPerRow*maxRows)
	}

	var rows []discordgo.MessageComponent
	var row discordgo.ActionsRow
	for _, a := range actions {
		id, err := EncodeCustomID(a)
		if err != nil {
			return nil, err
		}
		style := discordgo.PrimaryButton
		if a.Style == domain.StyleDanger {
			style = discordgo.DangerButton
		}
		row.Components = append(row.Components, discordgo.Button{
			Label:    a.Label,
			Style:    style,
			CustomID: id,
		})
		if len(row.Components) == maxButtonsPerRow {
			rows = append(rows, row)
			row = discordgo.ActionsRow{}
		}
	}
	if len(row.Components) > 0 {
		rows = append(rows, row)
	}
	return rows, nil
}
