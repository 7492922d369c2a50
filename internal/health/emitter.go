package health

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
)

// Broadcaster is the subset of the hub the emitter needs.
type Broadcaster interface {
	BroadcastRoom(room, event string, data any)
}

// Emitter periodically fabricates plausible-looking system metrics and
// broadcasts them to the admin room. The values are cosmetic; nothing is
// measured.
type Emitter struct {
	broadcaster Broadcaster
	interval    time.Duration
}

// NewEmitter creates an emitter ticking at the given interval.
func NewEmitter(b Broadcaster, interval time.Duration) *Emitter {
	return &Emitter{
		broadcaster: b,
		interval:    interval,
	}
}

// Run broadcasts a metrics snapshot every interval until ctx is cancelled.
// It should run in its own goroutine for the process lifetime.
func (e *Emitter) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	logger.Log.Infow("health emitter running", "interval", e.interval)

	for {
		select {
		case <-ticker.C:
			e.broadcaster.BroadcastRoom(hub.AdminRoom, hub.EventSystemHealth, snapshot())
		case <-ctx.Done():
			logger.Log.Info("health emitter stopped")
			return
		}
	}
}

// snapshot fabricates database, AI-service, and server metrics in ranges that
// look believable on a dashboard.
func snapshot() map[string]any {
	return map[string]any{
		"database": map[string]string{
			"responseTime": fmt.Sprintf("%dms", 8+rand.Intn(18)),
			"connections":  fmt.Sprintf("%d/100", 30+rand.Intn(51)),
			"storage":      fmt.Sprintf("%.1fGB used", 2.0+rand.Float64()*1.5),
		},
		"ai": map[string]string{
			"apiCalls":    fmt.Sprintf("%.1fK/hour", 1.0+rand.Float64()),
			"successRate": fmt.Sprintf("%.1f%%", 98.5+rand.Float64()*1.4),
			"queue":       fmt.Sprintf("%d pending", rand.Intn(6)),
			"latency":     fmt.Sprintf("%dms", 700+rand.Intn(501)),
			"errorRate":   fmt.Sprintf("%.1f%%", 0.1+rand.Float64()*0.4),
		},
		"server": map[string]string{
			"cpu":     fmt.Sprintf("%d%%", 15+rand.Intn(21)),
			"memory":  fmt.Sprintf("%.1fGB/4GB", 1.5+rand.Float64()),
			"disk":    fmt.Sprintf("%d%% used", 40+rand.Intn(21)),
			"network": fmt.Sprintf("%d Mbps", 100+rand.Intn(101)),
			"load":    fmt.Sprintf("%.1f", 0.5+rand.Float64()*0.7),
		},
	}
}
