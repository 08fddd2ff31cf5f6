package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/crm/config"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/metrics"
)

// OrderReminders finds orders placed in the last seven days and appends a
// reminder line per order to the reminders log.
type OrderReminders struct {
	Exec *Executor
}

const remindersQueryFmt = `
query {
  allOrders(orderDateGte: %q) {
    id
    customer {
      email
    }
  }
}`

// Run logs one reminder per recent order:
//
//	[YYYY-MM-DD HH:MM:SS] Order ID: N, Customer Email: e
func (j *OrderReminders) Run() {
	start := time.Now()

	err := j.remind(start)
	if err != nil {
		logger.Error("reminders: failed", "error", err)
	}
	metrics.RecordJob("order_reminders", err, start)
}

func (j *OrderReminders) remind(now time.Time) error {
	sevenDaysAgo := now.AddDate(0, 0, -7).Format(time.RFC3339)
	query := fmt.Sprintf(remindersQueryFmt, sevenDaysAgo)

	data, err := j.Exec.Do(context.Background(), query)
	if err != nil {
		return err
	}

	stamp := now.Format(stampLayout)
	orders, _ := data["allOrders"].([]interface{})
	for _, item := range orders {
		o, _ := item.(map[string]interface{})
		if o == nil {
			continue
		}

		id, _ := o["id"].(string)
		email := "N/A"
		if c, ok := o["customer"].(map[string]interface{}); ok {
			if e, ok := c["email"].(string); ok {
				email = e
			}
		}

		line := fmt.Sprintf("[%s] Order ID: %s, Customer Email: %s", stamp, id, email)
		if err := appendLine(config.OrderRemindersLog(), line); err != nil {
			return err
		}
	}

	logger.Info("reminders: processed", "orders", len(orders))
	return nil
}
