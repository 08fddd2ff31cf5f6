package jobs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shashiranjanraj/crm/config"
	"github.com/shashiranjanraj/crm/pkg/logger"
)

// ReportJob is the weekly summary report. It runs through the queue so the
// web process can dispatch it and a worker process can execute it.
type ReportJob struct{}

// ReportJobName is the queue registry key for ReportJob.
const ReportJobName = "jobs.ReportJob"

const reportQuery = `
query {
  allCustomers {
    id
  }
  allOrders {
    id
    totalAmount
  }
}`

// Handle fetches totals via GraphQL and appends one report line:
//
//	YYYY-MM-DD HH:MM:SS - Report: X customers, Y orders, Z revenue.
//
// An error line is appended instead when the query fails.
func (j ReportJob) Handle() error {
	stamp := time.Now().Format(stampLayout)

	data, err := reportExecutor().Do(context.Background(), reportQuery)
	if err != nil {
		line := fmt.Sprintf("%s - Error generating report: %s", stamp, err)
		if werr := appendLine(config.ReportLog(), line); werr != nil {
			logger.Error("report: write log", "error", werr)
		}
		return err
	}

	customers, _ := data["allCustomers"].([]interface{})
	orders, _ := data["allOrders"].([]interface{})

	revenue := 0.0
	for _, item := range orders {
		o, _ := item.(map[string]interface{})
		if o == nil {
			continue
		}
		switch v := o["totalAmount"].(type) {
		case float64:
			revenue += v
		case int:
			revenue += float64(v)
		}
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue.",
		stamp, len(customers), len(orders),
		strconv.FormatFloat(revenue, 'f', -1, 64))

	if err := appendLine(config.ReportLog(), line); err != nil {
		return err
	}

	logger.Info("report: generated",
		"customers", len(customers), "orders", len(orders), "revenue", revenue)
	return nil
}
