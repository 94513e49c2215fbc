package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jonboyd/site-server/internal/audit"
)

const sweepTimeout = 30 * time.Second

// ExpiredSessionDeleter is the slice of the session repository the sweeper needs.
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically removes expired admin sessions. Expired
// sessions are already rejected on lookup, so this only reclaims rows.
type SessionSweeper struct {
	sessions ExpiredSessionDeleter
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSessionSweeper(sessions ExpiredSessionDeleter, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (j *SessionSweeper) Start() {
	j.wg.Add(1)
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("session sweeper started")
}

// Stop is safe to call more than once and waits for an in-flight sweep.
func (j *SessionSweeper) Stop() {
	j.stopOnce.Do(func() {
		close(j.done)
		j.wg.Wait()
		log.Info().Msg("session sweeper stopped")
	})
}

func (j *SessionSweeper) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.Sweep(context.Background())

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.Sweep(context.Background())
		}
	}
}

// Sweep runs one pass and returns how many sessions were removed.
func (j *SessionSweeper) Sweep(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	count, err := j.sessions.DeleteExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to sweep expired sessions")
		return 0
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("swept expired sessions")
		audit.Log(ctx, audit.Event{
			Type:    audit.EventSessionSweep,
			Details: map[string]interface{}{"count": count},
		})
	}
	return count
}
