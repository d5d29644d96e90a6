package main

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
)

// PublishCustomerUpdate posts the scrubbed customer update to the configured
// Slack channel. Only the commander may publish.
func PublishCustomerUpdate(cfg Config, role Role, customerText string) error {
	if role != RoleCommander {
		return validationErrorf("only the commander role can publish the customer update")
	}
	if !cfg.publishConfigured() {
		return validationErrorf("publishing requires slack_bot_token and publish_channel_id")
	}

	api := slack.New(cfg.SlackBotToken)
	_, _, err := api.PostMessage(cfg.PublishChannelID,
		slack.MsgOptionText(customerText, false),
	)
	if err != nil {
		return fmt.Errorf("publishing customer update: %w", err)
	}
	log.Printf("published customer update channel=%s size=%d", cfg.PublishChannelID, len(customerText))
	return nil
}
