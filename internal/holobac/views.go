package holobac

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
)

// componentPrefix namespaces every Holobac button custom ID.
const componentPrefix = "holobac_"

// Button custom IDs.
const (
	ComponentDraw      discord.ComponentID = componentPrefix + "draw"
	ComponentStand     discord.ComponentID = componentPrefix + "stand"
	ComponentPlayAgain discord.ComponentID = componentPrefix + "playagain"
	ComponentChangeBet discord.ComponentID = componentPrefix + "changebet"
)

// IsGameComponent reports whether a component custom ID belongs to the game.
func IsGameComponent(id discord.ComponentID) bool {
	return strings.HasPrefix(string(id), componentPrefix)
}

// GameButtons is the DRAW / STAND row shown while a match is live.
func GameButtons(disabled bool) *discord.ContainerComponents {
	return discord.ComponentsPtr(
		&discord.ActionRowComponent{
			&discord.ButtonComponent{
				Label:    "DRAW",
				CustomID: ComponentDraw,
				Style:    discord.PrimaryButtonStyle(),
				Disabled: disabled,
			},
			&discord.ButtonComponent{
				Label:    "STAND",
				CustomID: ComponentStand,
				Style:    discord.PrimaryButtonStyle(),
				Disabled: disabled,
			},
		},
	)
}

// EndButtons is the PLAY AGAIN / CHANGE BET row shown after a match ends.
func EndButtons(disabled bool) *discord.ContainerComponents {
	return discord.ComponentsPtr(
		&discord.ActionRowComponent{
			&discord.ButtonComponent{
				Label:    "PLAY AGAIN",
				CustomID: ComponentPlayAgain,
				Style:    discord.PrimaryButtonStyle(),
				Disabled: disabled,
			},
			&discord.ButtonComponent{
				Label:    "CHANGE BET",
				CustomID: ComponentChangeBet,
				Style:    discord.PrimaryButtonStyle(),
				Disabled: disabled,
			},
		},
	)
}
