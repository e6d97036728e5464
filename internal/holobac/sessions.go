package holobac

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/game"
	"github.com/Oriyon-111111/go-discord-holobac/pkg/util"
)

// GameSession binds one user's match to the Discord message that shows it.
// Handlers lock the session for the whole interaction so button mashing
// cannot interleave two dealer turns.
type GameSession struct {
	UserID   discord.UserID
	Username string
	Match    *game.Match

	// ChannelID and MessageID locate the game message once the initial
	// interaction response has been sent.
	ChannelID discord.ChannelID
	MessageID discord.MessageID

	mu   sync.Mutex
	idle *util.Debouncer
	done chan struct{}
}

// Lock acquires the session for an interaction.
func (gs *GameSession) Lock() { gs.mu.Lock() }

// Unlock releases the session.
func (gs *GameSession) Unlock() { gs.mu.Unlock() }

// Touch resets the idle timeout, keeping the session's buttons alive.
func (gs *GameSession) Touch() {
	if gs.idle != nil {
		gs.idle.Reset()
	}
}

// SessionManager tracks at most one live match per user in an LRU cache.
// Sessions expire after an idle timeout, mirroring the button timeout on the
// game message.
type SessionManager struct {
	logger   *zap.Logger
	sessions *lru.Cache[discord.UserID, *GameSession]

	numDecks int
	timeout  time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand

	expireMu sync.RWMutex
	onExpire func(*GameSession)
}

// NewSessionManager creates a SessionManager holding up to cacheSize
// sessions whose buttons go stale after timeout of inactivity.
func NewSessionManager(logger *zap.Logger, cacheSize, numDecks int, timeout time.Duration) (*SessionManager, error) {
	sm := &SessionManager{
		logger:   logger.Named("session_manager"),
		numDecks: numDecks,
		timeout:  timeout,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	cache, err := lru.NewWithEvict(cacheSize, sm.onEvict)
	if err != nil {
		return nil, err
	}
	sm.sessions = cache

	return sm, nil
}

// SetExpiryHandler registers the callback run when a session idles out.
// The handler is called from the session's own watchdog goroutine.
func (sm *SessionManager) SetExpiryHandler(handler func(*GameSession)) {
	sm.expireMu.Lock()
	defer sm.expireMu.Unlock()
	sm.onExpire = handler
}

// Start creates a fresh match for the user, replacing any existing session.
func (sm *SessionManager) Start(userID discord.UserID, username string, bet int) *GameSession {
	// Evict an existing session explicitly so its watchdog shuts down.
	sm.sessions.Remove(userID)

	sm.rngMu.Lock()
	match := game.NewMatch(sm.numDecks, bet, sm.rng)
	sm.rngMu.Unlock()

	gs := &GameSession{
		UserID:   userID,
		Username: username,
		Match:    match,
		idle:     util.NewDebouncer(sm.timeout),
		done:     make(chan struct{}),
	}
	go sm.watchIdle(gs)

	sm.sessions.Add(userID, gs)
	sm.logger.Info("Started game session",
		zap.Stringer("userID", userID),
		zap.String("username", username),
		zap.Int("bet", bet))

	return gs
}

// Get fetches the user's session and refreshes its idle timeout.
func (sm *SessionManager) Get(userID discord.UserID) (*GameSession, bool) {
	gs, ok := sm.sessions.Get(userID)
	if ok {
		gs.Touch()
	}

	return gs, ok
}

// Remove drops the user's session, stopping its idle watchdog.
func (sm *SessionManager) Remove(userID discord.UserID) {
	sm.sessions.Remove(userID)
}

// Len returns the number of live sessions.
func (sm *SessionManager) Len() int {
	return sm.sessions.Len()
}

// onEvict runs for every cache removal: explicit Remove, replacement via
// Start, and LRU pressure. It shuts the session's watchdog down.
func (sm *SessionManager) onEvict(userID discord.UserID, gs *GameSession) {
	if gs.idle != nil {
		gs.idle.Stop()
	}
	close(gs.done)
	sm.logger.Debug("Evicted game session", zap.Stringer("userID", userID))
}

// watchIdle fires the expiry handler once the session has been untouched for
// the configured timeout, or exits quietly when the session is evicted.
func (sm *SessionManager) watchIdle(gs *GameSession) {
	select {
	case <-gs.done:
		return
	case <-gs.idle.C():
	}

	// A later Start may have replaced this session between the timer
	// firing and now; only expire the session that is still cached.
	if current, ok := sm.sessions.Peek(gs.UserID); !ok || current != gs {
		return
	}

	sm.logger.Info("Game session idled out", zap.Stringer("userID", gs.UserID))
	sm.sessions.Remove(gs.UserID)

	sm.expireMu.RLock()
	handler := sm.onExpire
	sm.expireMu.RUnlock()

	if handler != nil {
		handler(gs)
	}
}
