package heartbeat

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"

	"github.com/stevedore-project/stevedore/pkg/agent"
)

// Heartbeat is a liveness report from a single agent instance. The sequence
// is monotonically increasing (reboots aside). We do not use timestamps from
// the agent, we rely solely on the monitor-side clock to avoid clock drift
// issues.
type Heartbeat struct {
	InstanceID string
	Sequence   uint64
}

type heartbeatRecord struct {
	sequence uint64
	seenAt   time.Time
}

type MonitorParams struct {
	// LivenessWindow is how long after the last heartbeat an instance is
	// still considered healthy.
	LivenessWindow time.Duration
	Clock          clock.Clock
}

// Monitor tracks agent heartbeats and reports an instance healthy iff a
// heartbeat arrived within the liveness window. Instances that never
// heartbeated are unhealthy.
type Monitor struct {
	window  time.Duration
	clock   clock.Clock
	records map[string]heartbeatRecord
	mu      sync.RWMutex
}

func NewMonitor(params MonitorParams) *Monitor {
	if params.Clock == nil {
		params.Clock = clock.New()
	}
	return &Monitor{
		window:  params.LivenessWindow,
		clock:   params.Clock,
		records: make(map[string]heartbeatRecord),
	}
}

// Handle records a heartbeat. Stale heartbeats arriving out of order are
// dropped so a delayed message cannot resurrect an instance.
func (m *Monitor) Handle(ctx context.Context, message Heartbeat) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[message.InstanceID]
	if ok && message.Sequence < existing.sequence {
		log.Ctx(ctx).Trace().Msgf("dropping stale heartbeat seq %d from %s", message.Sequence, message.InstanceID)
		return nil
	}
	m.records[message.InstanceID] = heartbeatRecord{
		sequence: message.Sequence,
		seenAt:   m.clock.Now(),
	}
	log.Ctx(ctx).Trace().Msgf("heartbeat received from %s", message.InstanceID)
	return nil
}

func (m *Monitor) IsHealthy(ctx context.Context, instanceID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[instanceID]
	if !ok {
		return false
	}
	return m.clock.Now().Sub(record.seenAt) <= m.window
}

// compile-time check that we implement the status monitor interface
var _ agent.StatusMonitor = (*Monitor)(nil)
