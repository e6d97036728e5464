package holobac

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/game"
)

// pauseBeforeDealer is the beat between the player's final action and the
// dealer starting to draw.
const pauseBeforeDealer = 500 * time.Millisecond

// Service runs the Holobac game flow: it owns the sessions and translates
// slash commands and button presses into match state changes and message
// edits.
type Service struct {
	logger       *zap.Logger
	sessions     *SessionManager
	embeds       *EmbedBuilder
	interactions InteractionManager

	defaultBet  int
	dealerDelay time.Duration
}

// NewService creates the game service and hooks session expiry to button
// disabling.
func NewService(logger *zap.Logger, sessions *SessionManager, embeds *EmbedBuilder, interactions InteractionManager, defaultBet int, dealerDelay time.Duration) *Service {
	s := &Service{
		logger:       logger.Named("holobac_service"),
		sessions:     sessions,
		embeds:       embeds,
		interactions: interactions,
		defaultBet:   defaultBet,
		dealerDelay:  dealerDelay,
	}

	sessions.SetExpiryHandler(s.expireSession)

	return s
}

// StartMatch begins a fresh match for the interaction's sender and posts the
// game message as the interaction response.
func (s *Service) StartMatch(ctx context.Context, e *gateway.InteractionCreateEvent, bet int) error {
	user := e.Sender()
	if user == nil {
		return fmt.Errorf("interaction has no sender")
	}

	if bet <= 0 {
		bet = s.defaultBet
	}

	gs := s.sessions.Start(user.ID, user.Username, bet)
	gs.Lock()
	defer gs.Unlock()

	embed, files := s.embeds.GameMessage(gs.Match)

	message, err := s.interactions.RespondGame(e.ID, e.Token, embed, files, GameButtons(false))
	if err != nil {
		s.sessions.Remove(user.ID)

		return err
	}

	gs.ChannelID = message.ChannelID
	gs.MessageID = message.ID

	return nil
}

// HandleComponent dispatches a game button press.
func (s *Service) HandleComponent(ctx context.Context, e *gateway.InteractionCreateEvent, data *discord.ButtonInteraction) error {
	switch data.CustomID {
	case ComponentDraw:
		return s.handleDraw(ctx, e)
	case ComponentStand:
		return s.handleStand(ctx, e)
	case ComponentPlayAgain:
		return s.handlePlayAgain(ctx, e)
	case ComponentChangeBet:
		return s.interactions.RespondEphemeral(e.ID, e.Token,
			"Run /holobac with the bet option to start a match at a different bet.")
	default:
		return fmt.Errorf("unknown game component %q", data.CustomID)
	}
}

func (s *Service) handleDraw(ctx context.Context, e *gateway.InteractionCreateEvent) error {
	if err := s.interactions.DeferUpdate(e.ID, e.Token); err != nil {
		return err
	}

	gs, err := s.sessionFor(e)
	if err != nil {
		return err
	}

	gs.Lock()
	defer gs.Unlock()
	gs.Touch()

	m := gs.Match

	// An automatic 30 means DRAW can only hand the turn to the dealer.
	if m.PlayerDone {
		return s.finishRound(ctx, gs)
	}

	m.PlayerDraw()

	if m.Player.Busted || m.Player.RoundScore == game.HolobacScore {
		if err := s.updateGame(gs, GameButtons(false)); err != nil {
			return err
		}
		sleepCtx(ctx, pauseBeforeDealer)

		return s.finishRound(ctx, gs)
	}

	return s.updateGame(gs, GameButtons(false))
}

func (s *Service) handleStand(ctx context.Context, e *gateway.InteractionCreateEvent) error {
	if err := s.interactions.DeferUpdate(e.ID, e.Token); err != nil {
		return err
	}

	gs, err := s.sessionFor(e)
	if err != nil {
		return err
	}

	gs.Lock()
	defer gs.Unlock()
	gs.Touch()

	return s.finishRound(ctx, gs)
}

func (s *Service) handlePlayAgain(ctx context.Context, e *gateway.InteractionCreateEvent) error {
	if err := s.interactions.DeferUpdate(e.ID, e.Token); err != nil {
		return err
	}

	user := e.Sender()
	if user == nil {
		return fmt.Errorf("interaction has no sender")
	}

	gs := s.sessions.Start(user.ID, user.Username, s.defaultBet)
	gs.Lock()
	defer gs.Unlock()
	s.bindMessage(gs, e)

	return s.updateGame(gs, GameButtons(false))
}

// finishRound plays the dealer out with animated edits, records the round,
// and either deals the next round or ends the match. The caller holds the
// session lock.
func (s *Service) finishRound(ctx context.Context, gs *GameSession) error {
	m := gs.Match
	m.DealerRevealed = true

	for !m.Dealer.Done() {
		if _, ok := m.Dealer.DrawFrom(m.Shoe); !ok {
			break
		}
		if err := s.updateGame(gs, GameButtons(false)); err != nil {
			return err
		}
		sleepCtx(ctx, s.dealerDelay)
	}

	dealerScore := m.Dealer.RoundScore
	if m.Dealer.Busted {
		dealerScore = 0
	}

	switch {
	case m.Player.Busted:
		m.Commentary = fmt.Sprintf("You busted! Dealer ends with %d.", dealerScore)
	case m.PlayerDone:
		m.Commentary += fmt.Sprintf(" Dealer ends with %d.", dealerScore)
	default:
		m.Commentary = fmt.Sprintf("You stand at %d. Dealer ends with %d.", m.Player.RoundScore, dealerScore)
	}

	m.RecordRound()

	if m.Complete() {
		return s.endMatch(gs)
	}

	m.StartNextRound()

	return s.updateGame(gs, GameButtons(false))
}

// endMatch posts the final scoreboard with the end-of-match buttons and
// drops the session. The caller holds the session lock.
func (s *Service) endMatch(gs *GameSession) error {
	m := gs.Match
	playerTotal, dealerTotal := m.Totals()

	switch m.Outcome() {
	case game.OutcomePlayerWin:
		m.Commentary += fmt.Sprintf(" You won! Final: Dealer %d, Player %d", dealerTotal, playerTotal)
	case game.OutcomeDealerWin:
		m.Commentary += fmt.Sprintf(" You lost. Final: Dealer %d, Player %d", dealerTotal, playerTotal)
	case game.OutcomeTie:
		m.Commentary += fmt.Sprintf(" It's a tie! Final: Dealer %d, Player %d", dealerTotal, playerTotal)
	}

	s.logger.Info("Match finished",
		zap.Stringer("userID", gs.UserID),
		zap.Int("playerTotal", playerTotal),
		zap.Int("dealerTotal", dealerTotal))

	if err := s.updateGame(gs, EndButtons(false)); err != nil {
		return err
	}

	s.sessions.Remove(gs.UserID)

	return nil
}

// sessionFor resolves the sender's session, lazily starting one bound to the
// pressed message when none exists, e.g. after a restart of the bot.
func (s *Service) sessionFor(e *gateway.InteractionCreateEvent) (*GameSession, error) {
	user := e.Sender()
	if user == nil {
		return nil, fmt.Errorf("interaction has no sender")
	}

	gs, ok := s.sessions.Get(user.ID)
	if !ok {
		s.logger.Info("No session for button press, starting a fresh match",
			zap.Stringer("userID", user.ID))
		gs = s.sessions.Start(user.ID, user.Username, s.defaultBet)
	}

	gs.Lock()
	s.bindMessage(gs, e)
	gs.Unlock()

	return gs, nil
}

// bindMessage points the session at the message the interaction came from.
// The caller holds the session lock.
func (s *Service) bindMessage(gs *GameSession, e *gateway.InteractionCreateEvent) {
	if e.Message != nil {
		gs.ChannelID = e.Message.ChannelID
		gs.MessageID = e.Message.ID
	}
}

func (s *Service) updateGame(gs *GameSession, components *discord.ContainerComponents) error {
	embed, files := s.embeds.GameMessage(gs.Match)

	return s.interactions.UpdateGame(gs.ChannelID, gs.MessageID, embed, files, components)
}

// expireSession greys out the buttons on an idled-out game message.
func (s *Service) expireSession(gs *GameSession) {
	gs.Lock()
	defer gs.Unlock()

	if !gs.MessageID.IsValid() {
		return
	}

	if err := s.interactions.DisableComponents(gs.ChannelID, gs.MessageID, GameButtons(true)); err != nil {
		s.logger.Warn("Failed to disable components on expired session",
			zap.Error(err),
			zap.Stringer("userID", gs.UserID))
	}
}

// sleepCtx sleeps for d or until the context is canceled.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
