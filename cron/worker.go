package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"garagedesk/config"
	"garagedesk/services/report"
	"garagedesk/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeHoursRollup = "report:hours_rollup"

// rollupPayload picks the date to aggregate; empty means yesterday.
type rollupPayload struct {
	Date string `json:"date,omitempty"`
}

// InitRollupWorker runs the async worker and its nightly schedule in the
// background. The 02:00 task rolls yesterday's completed task minutes into
// the tech_hours_daily collection.
func InitRollupWorker(reportSvc *report.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeHoursRollup, handleRollupTask(reportSvc))

	go func() {
		log.Println("[RollupWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RollupWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RollupWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	task := asynq.NewTask(TypeHoursRollup, nil)
	if _, err := scheduler.Register("0 2 * * *", task); err != nil {
		log.Printf("[RollupWorker] failed to register nightly rollup: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[RollupWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleRollupTask(reportSvc *report.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload rollupPayload
		if len(t.Payload()) > 0 {
			if err := json.Unmarshal(t.Payload(), &payload); err != nil {
				return err
			}
		}
		date := payload.Date
		if date == "" {
			date = scheduling.FormatDate(time.Now().AddDate(0, 0, -1))
		}
		log.Printf("[RollupWorker] rolling up technician hours for %s", date)
		return reportSvc.RollupDay(ctx, date)
	}
}
