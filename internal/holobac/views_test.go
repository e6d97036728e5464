package holobac_test

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oriyon-111111/go-discord-holobac/internal/holobac"
)

func buttonsOf(t *testing.T, components *discord.ContainerComponents) []*discord.ButtonComponent {
	t.Helper()

	require.Len(t, *components, 1)
	row, ok := (*components)[0].(*discord.ActionRowComponent)
	require.True(t, ok)

	buttons := make([]*discord.ButtonComponent, 0, len(*row))
	for _, c := range *row {
		button, ok := c.(*discord.ButtonComponent)
		require.True(t, ok)
		buttons = append(buttons, button)
	}

	return buttons
}

func TestGameButtons(t *testing.T) {
	buttons := buttonsOf(t, holobac.GameButtons(false))
	require.Len(t, buttons, 2)

	assert.Equal(t, "DRAW", buttons[0].Label)
	assert.Equal(t, holobac.ComponentDraw, buttons[0].CustomID)
	assert.Equal(t, "STAND", buttons[1].Label)
	assert.Equal(t, holobac.ComponentStand, buttons[1].CustomID)
	assert.False(t, buttons[0].Disabled)

	for _, b := range buttonsOf(t, holobac.GameButtons(true)) {
		assert.True(t, b.Disabled)
	}
}

func TestEndButtons(t *testing.T) {
	buttons := buttonsOf(t, holobac.EndButtons(false))
	require.Len(t, buttons, 2)

	assert.Equal(t, "PLAY AGAIN", buttons[0].Label)
	assert.Equal(t, holobac.ComponentPlayAgain, buttons[0].CustomID)
	assert.Equal(t, "CHANGE BET", buttons[1].Label)
	assert.Equal(t, holobac.ComponentChangeBet, buttons[1].CustomID)
}

func TestIsGameComponent(t *testing.T) {
	assert.True(t, holobac.IsGameComponent(holobac.ComponentDraw))
	assert.True(t, holobac.IsGameComponent(holobac.ComponentChangeBet))
	assert.False(t, holobac.IsGameComponent("other_button"))
}
