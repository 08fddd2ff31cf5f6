package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/graphql-go/graphql"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/crm/app/graph"
	"github.com/shashiranjanraj/crm/config"
	"github.com/shashiranjanraj/crm/internal/jobs"
	"github.com/shashiranjanraj/crm/pkg/cache"
	"github.com/shashiranjanraj/crm/pkg/database"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/queue"
	"github.com/shashiranjanraj/crm/pkg/schedule"
)

var (
	queueWorkersFlag int
	jobsRemoteFlag   bool
)

// bootSchema opens the database and builds the executable GraphQL schema
// the jobs resolve against.
func bootSchema() (graphql.Schema, error) {
	if err := bootDB(); err != nil {
		return graphql.Schema{}, err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("jobs: redis unavailable, using in-memory queue", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseDB(database.DB)

	return graph.NewSchema(graph.NewResolver(database.DB))
}

// crm queue:work runs workers in a separate process from the web server.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := bootSchema()
		if err != nil {
			return err
		}
		jobs.SetExecutor(jobs.NewExecutor(schema))
		queue.Register(jobs.ReportJobName, func() queue.Job { return &jobs.ReportJob{} })

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 2
		}

		fmt.Printf("🚀 Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\n⚡ Queue worker stopped.")
		return nil
	},
}

// crm schedule:run runs the scheduler in a separate process.
var scheduleRunCmd = &cobra.Command{
	Use:   "schedule:run",
	Short: "Start the task scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := bootSchema()
		if err != nil {
			return err
		}
		jobs.Register(schema)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tasks := schedule.List()
		fmt.Println("Registered scheduled tasks:")
		for _, t := range tasks {
			fmt.Println("  •", t)
		}

		fmt.Println("🕐 Scheduler started. Press Ctrl+C to stop.")
		schedule.Start(ctx)

		<-ctx.Done()
		fmt.Println("\n⚡ Scheduler stopped.")
		return nil
	},
}

// crm jobs:run <name> runs one job immediately, outside any schedule. With
// --remote the job queries a running server's /graphql endpoint instead of
// opening the database itself, so it can live in an external crontab.
var jobsRunCmd = &cobra.Command{
	Use:       "jobs:run [heartbeat|low-stock|report|reminders]",
	Short:     "Run a single job once and exit",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"heartbeat", "low-stock", "report", "reminders"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var exec *jobs.Executor
		if jobsRemoteFlag {
			exec = jobs.NewHTTPExecutor(config.GraphQLURL())
		} else {
			schema, err := bootSchema()
			if err != nil {
				return err
			}
			exec = jobs.NewExecutor(schema)
		}
		jobs.SetExecutor(exec)

		switch args[0] {
		case "heartbeat":
			(&jobs.Heartbeat{Exec: exec}).Run()
		case "low-stock":
			(&jobs.LowStockRestock{Exec: exec}).Run()
		case "report":
			return jobs.ReportJob{}.Handle()
		case "reminders":
			(&jobs.OrderReminders{Exec: exec}).Run()
			fmt.Println("Order reminders processed!")
		default:
			return fmt.Errorf("unknown job %q", args[0])
		}
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 2, "Number of concurrent workers")
	jobsRunCmd.Flags().BoolVar(&jobsRemoteFlag, "remote", false, "Execute against GRAPHQL_URL instead of in-process")
}
