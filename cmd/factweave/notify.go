// cmd/factweave/notify.go
package main

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// alertColor is the embed accent for crisis alerts.
const alertColor = 0xE74C3C

// Notifier delivers crisis alerts to a Discord channel.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

// NewNotifier creates a notifier. Sending uses the REST API only; no gateway
// connection is opened.
func NewNotifier(token, channelID string) (*Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %v", err)
	}
	return &Notifier{session: session, channelID: channelID}, nil
}

// NotifyCrisis posts one embed per alert plus a recommended-actions footer.
func (n *Notifier) NotifyCrisis(resp CrisisResponse) error {
	if !resp.CrisisDetected {
		return nil
	}

	for _, alert := range resp.Alerts {
		if _, err := n.session.ChannelMessageSendEmbed(n.channelID, formatAlertEmbed(alert)); err != nil {
			return fmt.Errorf("failed to send alert %s: %v", alert.ID, err)
		}
	}

	if len(resp.RecommendedActions) > 0 {
		msg := "Recommended actions: " + strings.Join(resp.RecommendedActions, ", ")
		if _, err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
			return fmt.Errorf("failed to send actions: %v", err)
		}
	}
	return nil
}

// formatAlertEmbed renders one crisis alert as a Discord embed.
func formatAlertEmbed(alert CrisisAlert) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🚨 %s", alert.Title),
		Description: alert.Description,
		Color:       alertColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Severity", Value: alert.Severity, Inline: true},
			{Name: "Region", Value: alert.Region, Inline: true},
			{Name: "Keywords", Value: strings.Join(alert.Keywords, ", ")},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Alert " + alert.ID,
		},
	}
}
