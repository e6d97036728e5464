package holobac

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/diamondburned/arikawa/v3/utils/sendpart"
	"go.uber.org/zap"
)

// InteractionManager handles the direct Discord API calls of the game flow.
type InteractionManager interface {
	// RespondGame sends the initial game message as the interaction
	// response and returns the created message.
	RespondGame(eventID discord.InteractionID, eventToken string, embed discord.Embed, files []sendpart.File, components *discord.ContainerComponents) (*discord.Message, error)
	// DeferUpdate acknowledges a component press without changing the
	// message yet.
	DeferUpdate(eventID discord.InteractionID, eventToken string) error
	// UpdateGame edits the game message in place, replacing the hand
	// image attachment.
	UpdateGame(channelID discord.ChannelID, messageID discord.MessageID, embed discord.Embed, files []sendpart.File, components *discord.ContainerComponents) error
	// DisableComponents greys out the buttons on a game message.
	DisableComponents(channelID discord.ChannelID, messageID discord.MessageID, components *discord.ContainerComponents) error
	// RespondEphemeral answers an interaction with a private message.
	RespondEphemeral(eventID discord.InteractionID, eventToken, content string) error
}

// NewInteractionManager creates an InteractionManager over a Discord session.
func NewInteractionManager(ses *session.Session, appID discord.AppID, logger *zap.Logger) InteractionManager {
	return &interactionManagerImpl{
		ses:    ses,
		appID:  appID,
		logger: logger.Named("interaction_manager"),
	}
}

type interactionManagerImpl struct {
	ses    *session.Session
	appID  discord.AppID
	logger *zap.Logger
}

func (im *interactionManagerImpl) RespondGame(eventID discord.InteractionID, eventToken string, embed discord.Embed, files []sendpart.File, components *discord.ContainerComponents) (*discord.Message, error) {
	response := api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{embed},
			Components: components,
			Files:      files,
		},
	}

	if err := im.ses.RespondInteraction(eventID, eventToken, response); err != nil {
		im.logger.Error("Failed to send initial game response", zap.Error(err))

		return nil, fmt.Errorf("failed to send initial game response: %w", err)
	}

	message, err := im.ses.InteractionResponse(im.appID, eventToken)
	if err != nil {
		im.logger.Error("Failed to fetch the game message", zap.Error(err))

		return nil, fmt.Errorf("failed to fetch game message: %w", err)
	}

	return message, nil
}

func (im *interactionManagerImpl) DeferUpdate(eventID discord.InteractionID, eventToken string) error {
	err := im.ses.RespondInteraction(eventID, eventToken, api.InteractionResponse{
		Type: api.DeferredMessageUpdate,
	})
	if err != nil {
		return fmt.Errorf("failed to defer component update: %w", err)
	}

	return nil
}

func (im *interactionManagerImpl) UpdateGame(channelID discord.ChannelID, messageID discord.MessageID, embed discord.Embed, files []sendpart.File, components *discord.ContainerComponents) error {
	// Dropping old attachments keeps the message from accumulating one
	// hand image per edit.
	edit := api.EditMessageData{
		Embeds:      &[]discord.Embed{embed},
		Components:  components,
		Attachments: &[]discord.Attachment{},
		Files:       files,
	}

	if _, err := im.ses.EditMessageComplex(channelID, messageID, edit); err != nil {
		im.logger.Warn("Failed to update game message",
			zap.Error(err),
			zap.Stringer("channelID", channelID),
			zap.Stringer("messageID", messageID))

		return fmt.Errorf("failed to update game message: %w", err)
	}

	return nil
}

func (im *interactionManagerImpl) DisableComponents(channelID discord.ChannelID, messageID discord.MessageID, components *discord.ContainerComponents) error {
	edit := api.EditMessageData{
		Components: components,
	}

	if _, err := im.ses.EditMessageComplex(channelID, messageID, edit); err != nil {
		return fmt.Errorf("failed to disable game components: %w", err)
	}

	return nil
}

func (im *interactionManagerImpl) RespondEphemeral(eventID discord.InteractionID, eventToken, content string) error {
	err := im.ses.RespondInteraction(eventID, eventToken, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(content),
			Flags:   discord.EphemeralMessage,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send ephemeral response: %w", err)
	}

	return nil
}
