// Package worker implements the label worker lifecycle and Redis Streams integration.
//
// The worker subscribes to a Redis Stream for render requests, renders each
// column label through the renderer, and publishes results back to the
// display integration.
//
// Example usage:
//
//	cfg, _ := config.Load()
//	redisClient := redis.NewClient(&redis.Options{...})
//	r := renderer.New(cfg.LocaleTag(), nil, logger)
//
//	worker := worker.NewWorker(cfg, redisClient, r, logger)
//	if err := worker.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer worker.Stop()
//
// The worker handles:
//   - Redis Streams subscription and consumer group management
//   - Render request decoding and label rendering
//   - Result publishing
//   - Error reporting for undecodable requests
//   - Graceful shutdown
//
// Rendering itself never fails, so the error stream only ever carries
// transport and decoding problems.
//
// Health checks are provided via a separate HTTP server:
//
//	healthServer := worker.NewHealthServer(8083, redisClient, logger)
//	healthServer.Start()
//	defer healthServer.Stop()
package worker
