package holobac_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/sendpart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/game"
	"github.com/Oriyon-111111/go-discord-holobac/internal/holobac"
)

// fakeInteractions records the Discord calls the service makes.
type fakeInteractions struct {
	mu sync.Mutex

	deferred  int
	updates   []*discord.ContainerComponents
	embeds    []discord.Embed
	ephemeral []string
	disabled  int
}

func (f *fakeInteractions) RespondGame(_ discord.InteractionID, _ string, embed discord.Embed, _ []sendpart.File, _ *discord.ContainerComponents) (*discord.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds = append(f.embeds, embed)

	return &discord.Message{ID: 42, ChannelID: 7}, nil
}

func (f *fakeInteractions) DeferUpdate(discord.InteractionID, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deferred++

	return nil
}

func (f *fakeInteractions) UpdateGame(_ discord.ChannelID, _ discord.MessageID, embed discord.Embed, _ []sendpart.File, components *discord.ContainerComponents) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, components)
	f.embeds = append(f.embeds, embed)

	return nil
}

func (f *fakeInteractions) DisableComponents(discord.ChannelID, discord.MessageID, *discord.ContainerComponents) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disabled++

	return nil
}

func (f *fakeInteractions) RespondEphemeral(_ discord.InteractionID, _ string, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ephemeral = append(f.ephemeral, content)

	return nil
}

func (f *fakeInteractions) lastComponents(t *testing.T) *discord.ContainerComponents {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.updates)

	return f.updates[len(f.updates)-1]
}

func (f *fakeInteractions) lastEmbed(t *testing.T) discord.Embed {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.embeds)

	return f.embeds[len(f.embeds)-1]
}

func newTestService(t *testing.T) (*holobac.Service, *holobac.SessionManager, *fakeInteractions) {
	t.Helper()

	sm, err := holobac.NewSessionManager(zap.NewNop(), 8, 3, time.Minute)
	require.NoError(t, err)

	fake := &fakeInteractions{}
	embeds := holobac.NewEmbedBuilder(zap.NewNop(), &stubRenderer{data: []byte("png")}, "")
	svc := holobac.NewService(zap.NewNop(), sm, embeds, fake, 10, 0)

	return svc, sm, fake
}

func interactionEvent(userID discord.UserID) *gateway.InteractionCreateEvent {
	return &gateway.InteractionCreateEvent{
		InteractionEvent: discord.InteractionEvent{
			ID:    discord.InteractionID(userID) + 1000,
			Token: "token",
			User:  &discord.User{ID: userID, Username: "alice"},
			Message: &discord.Message{
				ID:        42,
				ChannelID: 7,
			},
		},
	}
}

// stackStandingMatch replaces a session's match with a scripted one where
// the dealer opens at 24 every round and never draws.
func stackStandingMatch(t *testing.T, sm *holobac.SessionManager, userID discord.UserID) *game.Match {
	t.Helper()

	gs, ok := sm.Get(userID)
	require.True(t, ok)

	m := game.NewMatchWithShoe(game.NewStackedShoe(
		// Round 1: player 22, dealer 24.
		card(game.SuitOro, 10), card(game.SuitCopa, 12),
		card(game.SuitBasto, 12), card(game.SuitEspada, 12),
		// Round 2: player 14, dealer 24.
		card(game.SuitOro, 7), card(game.SuitCopa, 7),
		card(game.SuitBasto, 12), card(game.SuitEspada, 12),
		// Round 3: player 24, dealer 24.
		card(game.SuitOro, 12), card(game.SuitCopa, 12),
		card(game.SuitBasto, 12), card(game.SuitEspada, 12),
	), 10)

	gs.Lock()
	gs.Match = m
	gs.Unlock()

	return m
}

func TestService_StartMatch(t *testing.T) {
	svc, sm, fake := newTestService(t)

	err := svc.StartMatch(context.Background(), interactionEvent(1), 50)
	require.NoError(t, err)

	gs, ok := sm.Get(discord.UserID(1))
	require.True(t, ok)
	assert.Equal(t, 50, gs.Match.Bet)
	assert.EqualValues(t, 42, gs.MessageID)
	assert.EqualValues(t, 7, gs.ChannelID)

	assert.Contains(t, fake.lastEmbed(t).Fields[0].Value, "Bet: 50")
}

func TestService_StartMatch_DefaultBet(t *testing.T) {
	svc, sm, _ := newTestService(t)

	require.NoError(t, svc.StartMatch(context.Background(), interactionEvent(1), 0))

	gs, _ := sm.Get(discord.UserID(1))
	assert.Equal(t, 10, gs.Match.Bet)
}

func TestService_Stand_PlaysFullMatch(t *testing.T) {
	svc, sm, fake := newTestService(t)
	e := interactionEvent(1)

	require.NoError(t, svc.StartMatch(context.Background(), e, 10))
	m := stackStandingMatch(t, sm, discord.UserID(1))

	stand := &discord.ButtonInteraction{CustomID: holobac.ComponentStand}

	// Rounds one and two: recorded and redealt.
	require.NoError(t, svc.HandleComponent(context.Background(), e, stand))
	assert.Equal(t, 2, m.Round)
	assert.Equal(t, 22, m.PlayerScores[0])
	assert.Equal(t, 24, m.DealerScores[0])
	assert.Contains(t, m.Commentary, "Your score is 14.")

	require.NoError(t, svc.HandleComponent(context.Background(), e, stand))
	assert.Equal(t, 3, m.Round)

	// Round three ends the match: dealer 72 beats player 60.
	require.NoError(t, svc.HandleComponent(context.Background(), e, stand))
	assert.True(t, m.Complete())
	assert.Contains(t, m.Commentary, "You lost. Final: Dealer 72, Player 60")
	assert.Equal(t, "Better Luck Next Time!", fake.lastEmbed(t).Title)

	// The final edit swaps in the end-of-match buttons and the session is
	// gone.
	buttons := buttonsOf(t, fake.lastComponents(t))
	assert.Equal(t, holobac.ComponentPlayAgain, buttons[0].CustomID)
	assert.Equal(t, 0, sm.Len())
}

func TestService_Draw(t *testing.T) {
	t.Run("DrawUpdatesHand", func(t *testing.T) {
		svc, sm, _ := newTestService(t)
		e := interactionEvent(1)

		require.NoError(t, svc.StartMatch(context.Background(), e, 10))

		gs, _ := sm.Get(discord.UserID(1))
		gs.Lock()
		gs.Match = game.NewMatchWithShoe(game.NewStackedShoe(
			card(game.SuitOro, 2), card(game.SuitCopa, 3),
			card(game.SuitBasto, 12), card(game.SuitEspada, 12),
			card(game.SuitCopa, 6),
		), 10)
		m := gs.Match
		gs.Unlock()

		require.NoError(t, svc.HandleComponent(context.Background(), e,
			&discord.ButtonInteraction{CustomID: holobac.ComponentDraw}))

		assert.Equal(t, 11, m.Player.RoundScore)
		assert.Equal(t, 1, m.Round, "round must not advance on a plain draw")
	})

	t.Run("BustHandsTurnToDealer", func(t *testing.T) {
		svc, sm, _ := newTestService(t)
		e := interactionEvent(1)

		require.NoError(t, svc.StartMatch(context.Background(), e, 10))

		gs, _ := sm.Get(discord.UserID(1))
		gs.Lock()
		gs.Match = game.NewMatchWithShoe(game.NewStackedShoe(
			card(game.SuitOro, 12), card(game.SuitCopa, 12),
			card(game.SuitBasto, 12), card(game.SuitEspada, 12),
			card(game.SuitCopa, 11),
		), 10)
		m := gs.Match
		gs.Unlock()

		require.NoError(t, svc.HandleComponent(context.Background(), e,
			&discord.ButtonInteraction{CustomID: holobac.ComponentDraw}))

		assert.Equal(t, 2, m.Round, "bust must finish the round")
		assert.Equal(t, 0, m.PlayerScores[0])
		assert.Equal(t, 24, m.DealerScores[0])
	})
}

func TestService_LazySessionOnButtonPress(t *testing.T) {
	svc, sm, _ := newTestService(t)

	// No StartMatch: the button press alone must create a session, as
	// happens after the bot restarts under an old game message.
	require.NoError(t, svc.HandleComponent(context.Background(), interactionEvent(5),
		&discord.ButtonInteraction{CustomID: holobac.ComponentDraw}))

	gs, ok := sm.Get(discord.UserID(5))
	require.True(t, ok)
	assert.EqualValues(t, 42, gs.MessageID)
}

func TestService_PlayAgain(t *testing.T) {
	svc, sm, _ := newTestService(t)
	e := interactionEvent(1)

	require.NoError(t, svc.StartMatch(context.Background(), e, 10))
	first, _ := sm.Get(discord.UserID(1))

	require.NoError(t, svc.HandleComponent(context.Background(), e,
		&discord.ButtonInteraction{CustomID: holobac.ComponentPlayAgain}))

	second, ok := sm.Get(discord.UserID(1))
	require.True(t, ok)
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, second.Match.Round)
}

func TestService_ChangeBet(t *testing.T) {
	svc, _, fake := newTestService(t)

	require.NoError(t, svc.HandleComponent(context.Background(), interactionEvent(1),
		&discord.ButtonInteraction{CustomID: holobac.ComponentChangeBet}))

	require.Len(t, fake.ephemeral, 1)
	assert.Contains(t, fake.ephemeral[0], "/holobac")
}

func TestService_UnknownComponent(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.HandleComponent(context.Background(), interactionEvent(1),
		&discord.ButtonInteraction{CustomID: "holobac_bogus"})
	assert.Error(t, err)
}
