package cron

import (
	"context"
	"encoding/json"
	"time"

	"randevio/config"
	requestRepo "randevio/database/repository/request"
	"randevio/services/raffle"
	"randevio/services/tasks"
	"randevio/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitWorker runs the background worker and its schedule: an hourly sweep
// that expires stale open requests and a monthly raffle draw.
func InitWorker(raffleSvc raffle.RaffleService, requests requestRepo.RequestRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRaffleDraw, handleRaffleDraw(raffleSvc))
	mux.HandleFunc(tasks.TypeExpireRequests, handleExpireRequests(requests))

	go func() {
		utils.GetLogger().Info("starting background worker")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Fatal("background worker failed", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	expireTask, err := tasks.NewExpireRequestsTask()
	if err == nil {
		if _, err := scheduler.Register("@every 1h", expireTask); err != nil {
			utils.GetLogger().Error("failed to schedule request expiry", zap.Error(err))
		}
	}
	// Zero time makes the handler use the wall clock at run time.
	drawTask, err := tasks.NewRaffleDrawTask(time.Time{})
	if err == nil {
		// First day of each month, after midnight UTC.
		if _, err := scheduler.Register("0 3 1 * *", drawTask); err != nil {
			utils.GetLogger().Error("failed to schedule raffle draw", zap.Error(err))
		}
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Fatal("scheduler failed", zap.Error(err))
		}
	}()
}

func handleRaffleDraw(raffleSvc raffle.RaffleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RaffleDrawPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return err
		}
		now := p.Now
		if now.IsZero() {
			now = time.Now()
		}
		if err := raffleSvc.RunMonthlyDraw(now); err != nil {
			utils.GetLogger().Error("monthly raffle sweep failed", zap.Error(err))
			return err
		}
		return nil
	}
}

func handleExpireRequests(requests requestRepo.RequestRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		expired, err := requests.ExpireOpen(time.Now())
		if err != nil {
			utils.GetLogger().Error("request expiry sweep failed", zap.Error(err))
			return err
		}
		if expired > 0 {
			utils.GetLogger().Info("expired stale requests", zap.Int64("count", expired))
		}
		return nil
	}
}
