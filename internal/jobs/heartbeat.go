package jobs

import (
	"context"
	"time"

	"github.com/shashiranjanraj/crm/config"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/metrics"
)

// heartbeatLayout renders timestamps as DD/MM/YYYY-HH:MM:SS.
const heartbeatLayout = "02/01/2006-15:04:05"

// Heartbeat appends a liveness line to the heartbeat log every run and
// probes the GraphQL hello field to confirm the endpoint responds.
type Heartbeat struct {
	Exec *Executor
}

// Run writes one heartbeat line. The line is written even when the GraphQL
// probe fails; the probe outcome is only logged.
func (h *Heartbeat) Run() {
	start := time.Now()
	line := start.Format(heartbeatLayout) + " CRM is alive"

	err := appendLine(config.HeartbeatLog(), line)
	if err != nil {
		logger.Error("heartbeat: write log", "error", err)
	}
	metrics.RecordJob("heartbeat", err, start)

	data, probeErr := h.Exec.Do(context.Background(), `query { hello }`)
	if probeErr != nil {
		logger.Warn("heartbeat: graphql probe failed", "error", probeErr)
		return
	}
	if _, ok := data["hello"].(string); ok {
		logger.Info("heartbeat: graphql endpoint responsive")
	}
}
