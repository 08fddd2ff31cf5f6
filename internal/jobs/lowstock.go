package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/crm/config"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/metrics"
)

// stampLayout renders timestamps as YYYY-MM-DD HH:MM:SS, shared by the
// low-stock, report, and reminder logs.
const stampLayout = "2006-01-02 15:04:05"

// LowStockRestock runs the updateLowStockProducts mutation and appends one
// line per restocked product to the low-stock log.
type LowStockRestock struct {
	Exec *Executor
}

const lowStockMutation = `
mutation {
  updateLowStockProducts {
    success
    message
    updatedProducts {
      name
      stock
    }
  }
}`

// Run executes the restock mutation. On failure a single error line is
// appended instead of per-product lines.
func (j *LowStockRestock) Run() {
	start := time.Now()
	stamp := start.Format(stampLayout)

	err := j.restock(stamp)
	if err != nil {
		logger.Error("lowstock: restock failed", "error", err)
		if werr := appendLine(config.LowStockLog(), fmt.Sprintf("%s - Error: %s", stamp, err)); werr != nil {
			logger.Error("lowstock: write log", "error", werr)
		}
	}
	metrics.RecordJob("low_stock_restock", err, start)
}

func (j *LowStockRestock) restock(stamp string) error {
	data, err := j.Exec.Do(context.Background(), lowStockMutation)
	if err != nil {
		return err
	}

	payload, _ := data["updateLowStockProducts"].(map[string]interface{})
	if payload == nil {
		return errors.New("empty mutation payload")
	}

	if ok, _ := payload["success"].(bool); !ok {
		msg, _ := payload["message"].(string)
		return errors.New(msg)
	}

	updated, _ := payload["updatedProducts"].([]interface{})
	for _, item := range updated {
		p, _ := item.(map[string]interface{})
		if p == nil {
			continue
		}
		name, _ := p["name"].(string)
		stock := intValue(p["stock"])
		line := fmt.Sprintf("%s - Product: %s, New Stock: %d", stamp, name, stock)
		if err := appendLine(config.LowStockLog(), line); err != nil {
			return err
		}
	}

	logger.Info("lowstock: restock complete", "updated", len(updated))
	return nil
}
