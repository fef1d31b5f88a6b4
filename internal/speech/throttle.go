package speech

import (
	"math/rand/v2"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
	"golang.org/x/time/rate"
)

// Throttle lets one trigger through per cooldown window and rejects the rest.
type Throttle struct {
	limiter *rate.Limiter
}

func NewThrottle(cooldown time.Duration) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(rate.Every(cooldown), 1)}
}

// Allow reports whether a trigger at now may proceed.
func (t *Throttle) Allow(now time.Time) bool {
	return t.limiter.AllowN(now, 1)
}

// Encourager speaks a random encouragement when the throttle allows it.
type Encourager struct {
	speaker  Speaker
	throttle *Throttle
	rng      *rand.Rand
}

func NewEncourager(speaker Speaker, throttle *Throttle, rng *rand.Rand) *Encourager {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Encourager{speaker: speaker, throttle: throttle, rng: rng}
}

// Trigger picks one of cfg's encouragements and speaks it. It returns the
// phrase and true when something was spoken.
func (e *Encourager) Trigger(cfg models.Config, now time.Time) (string, bool) {
	if len(cfg.Encouragements) == 0 {
		return "", false
	}
	if !e.throttle.Allow(now) {
		return "", false
	}
	phrase := cfg.Encouragements[e.rng.IntN(len(cfg.Encouragements))]
	util.LogError("speak encouragement", e.speaker.Speak(phrase))
	return phrase, true
}
