package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"concierge/config"
	"concierge/database/repository"
	"concierge/models"
	"concierge/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitTraceWorker runs the async trace-persistence worker in background.
func InitTraceWorker(traceRepo repository.TraceRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTraceQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTracePersist, handleTracePersist(traceRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[TraceWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TraceWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TraceWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleTracePersist(traceRepo repository.TraceRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var trace models.DecisionTrace
		if err := json.Unmarshal(task.Payload(), &trace); err != nil {
			log.Printf("[TraceWorker] Invalid payload: %v", err)
			return err
		}

		if err := traceRepo.Save(ctx, &trace); err != nil {
			log.Printf("[TraceWorker] Failed to persist trace %s: %v", trace.TraceID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTraceQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TraceWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
