package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/5YPEXE/albion-objectives-bot/internal/render"
)

const embedColor = 0xE1E100

// Publisher posts rendered boards to a single channel. It implements the
// app.BoardPublisher contract: Publish returns the message id as the handle
// a later Delete supersedes.
type Publisher struct {
	session   *discordgo.Session
	channelID string
}

func NewPublisher(session *discordgo.Session, channelID string) *Publisher {
	return &Publisher{session: session, channelID: channelID}
}

func (p *Publisher) Publish(ctx context.Context, board render.Board) (string, error) {
	msg, err := p.session.ChannelMessageSendEmbed(p.channelID, buildEmbed(board), discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send board message: %w", err)
	}
	return msg.ID, nil
}

func (p *Publisher) Delete(ctx context.Context, handle string) error {
	return p.session.ChannelMessageDelete(p.channelID, handle, discordgo.WithContext(ctx))
}

func buildEmbed(board render.Board) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       board.Title,
		Description: board.Description,
		Color:       embedColor,
		Timestamp:   board.Timestamp.Format(time.RFC3339),
	}
	for _, entry := range board.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  entry.Name,
			Value: entry.Value,
		})
	}
	return embed
}
