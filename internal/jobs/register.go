package jobs

import (
	"sync"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/queue"
	"github.com/shashiranjanraj/crm/pkg/schedule"
)

// defaultExec is the executor queue jobs resolve against. Queue payloads
// are deserialized without constructor arguments, so ReportJob reaches the
// schema through this package-level handle.
var (
	execMu      sync.RWMutex
	defaultExec *Executor
)

// SetExecutor installs the executor used by queue-dispatched jobs.
// Called once at boot, before workers start.
func SetExecutor(e *Executor) {
	execMu.Lock()
	defaultExec = e
	execMu.Unlock()
}

func reportExecutor() *Executor {
	execMu.RLock()
	defer execMu.RUnlock()
	return defaultExec
}

// Register wires every CRM job: registers ReportJob with the queue and adds
// all recurring entries to the scheduler.
//
// Cadences:
//   - heartbeat         every 5 minutes
//   - low-stock restock every 12 hours
//   - weekly report     Mondays at 06:00 (dispatched to the queue)
//   - order reminders   daily at 08:00
func Register(schema graphql.Schema) {
	exec := NewExecutor(schema)
	SetExecutor(exec)

	queue.Register(ReportJobName, func() queue.Job { return &ReportJob{} })

	heartbeat := &Heartbeat{Exec: exec}
	lowStock := &LowStockRestock{Exec: exec}
	reminders := &OrderReminders{Exec: exec}

	schedule.Every(5).Minutes().Name("heartbeat").Run(heartbeat.Run)
	schedule.Cron("0 */12 * * *").Name("low-stock-restock").WithoutOverlapping().Run(lowStock.Run)
	schedule.Cron("0 8 * * *").Name("order-reminders").WithoutOverlapping().Run(reminders.Run)
	schedule.Cron("0 6 * * 1").Name("weekly-report").Run(func() {
		if err := queue.Dispatch(ReportJob{}); err != nil {
			logger.Error("jobs: dispatch report", "error", err)
		}
	})
}
