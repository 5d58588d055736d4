package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aescanero/label-engine/internal/config"
	"github.com/aescanero/label-engine/internal/renderer"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Worker represents the label render worker
type Worker struct {
	id            string
	config        *config.Config
	redisClient   *redis.Client
	renderer      *renderer.Renderer
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	streamKey     string
	consumerGroup string
	resultStream  string
}

// NewWorker creates a new worker
func NewWorker(
	cfg *config.Config,
	redisClient *redis.Client,
	rendererInstance *renderer.Renderer,
	logger *zap.Logger,
) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		id:            cfg.WorkerID,
		config:        cfg,
		redisClient:   redisClient,
		renderer:      rendererInstance,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		streamKey:     cfg.StreamKey,
		consumerGroup: cfg.ConsumerGroup,
		resultStream:  cfg.ResultStream,
	}
}

// Start starts the worker
func (w *Worker) Start() error {
	w.logger.Info("starting label worker",
		zap.String("worker_id", w.id),
		zap.String("stream_key", w.streamKey),
		zap.String("consumer_group", w.consumerGroup),
	)

	// Create consumer group if it doesn't exist
	if err := w.ensureConsumerGroup(); err != nil {
		return fmt.Errorf("failed to ensure consumer group: %w", err)
	}

	// Start processing work
	go w.processWork()

	w.logger.Info("label worker started", zap.String("worker_id", w.id))
	return nil
}

// Stop stops the worker gracefully
func (w *Worker) Stop() error {
	w.logger.Info("stopping label worker", zap.String("worker_id", w.id))

	// Cancel context to stop work processing
	w.cancel()

	// Wait a bit for in-flight work to complete
	time.Sleep(2 * time.Second)

	w.logger.Info("label worker stopped", zap.String("worker_id", w.id))
	return nil
}

// ensureConsumerGroup creates the consumer group if it doesn't exist
func (w *Worker) ensureConsumerGroup() error {
	// Try to create the group
	err := w.redisClient.XGroupCreateMkStream(w.ctx, w.streamKey, w.consumerGroup, "0").Err()
	if err != nil {
		// BUSYGROUP error means the group already exists, which is fine
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			w.logger.Debug("consumer group already exists",
				zap.String("group", w.consumerGroup),
			)
			return nil
		}
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.logger.Info("created consumer group",
		zap.String("group", w.consumerGroup),
		zap.String("stream", w.streamKey),
	)
	return nil
}

// processWork processes render requests from the Redis stream
func (w *Worker) processWork() {
	w.logger.Info("starting work processing loop")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info("work processing loop stopped")
			return
		default:
			// Read from stream
			streams, err := w.redisClient.XReadGroup(w.ctx, &redis.XReadGroupArgs{
				Group:    w.consumerGroup,
				Consumer: w.id,
				Streams:  []string{w.streamKey, ">"},
				Count:    1,
				Block:    w.config.BlockTime,
			}).Result()

			if err != nil {
				if err == redis.Nil {
					// No messages available, continue
					continue
				}
				w.logger.Error("failed to read from stream",
					zap.Error(err),
				)
				time.Sleep(time.Second)
				continue
			}

			// Process each message
			for _, stream := range streams {
				for _, message := range stream.Messages {
					w.handleMessage(message)
				}
			}
		}
	}
}

// handleMessage handles a single render request message
func (w *Worker) handleMessage(message redis.XMessage) {
	messageID := message.ID
	w.logger.Info("processing render request",
		zap.String("message_id", messageID),
	)

	// Parse the work request
	workRequest, err := w.parseWorkRequest(message.Values)
	if err != nil {
		w.logger.Error("failed to parse work request",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		w.publishError(messageID, err)
		w.acknowledgeMessage(messageID)
		return
	}

	// Rendering is total: a malformed template degrades to a partial render
	// with literal leftover markers, never to an error
	result := w.renderer.RenderLabel(&workRequest.Request)

	if err := w.publishResult(workRequest, result); err != nil {
		w.logger.Error("failed to publish render result",
			zap.String("message_id", messageID),
			zap.String("request_id", workRequest.RequestID),
			zap.Error(err),
		)
	}

	// Acknowledge the message
	w.acknowledgeMessage(messageID)
}

// WorkRequest represents a label render work request
type WorkRequest struct {
	RequestID string `json:"request_id"`
	renderer.Request
}

// parseWorkRequest parses a work request from Redis message
func (w *Worker) parseWorkRequest(values map[string]interface{}) (*WorkRequest, error) {
	dataStr, ok := values["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var request WorkRequest
	if err := json.Unmarshal([]byte(dataStr), &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal work request: %w", err)
	}

	return &request, nil
}

// publishResult publishes the rendered label
func (w *Worker) publishResult(request *WorkRequest, result string) error {
	decision := map[string]interface{}{
		"request_id": request.RequestID,
		"column_key": request.Column.Key,
		"label":      result,
		"worker_id":  w.id,
		"timestamp":  time.Now().UTC(),
	}

	data, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	// Publish to result stream
	_, err = w.redisClient.XAdd(w.ctx, &redis.XAddArgs{
		Stream: w.resultStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	w.logger.Info("published rendered label",
		zap.String("request_id", request.RequestID),
		zap.String("column_key", request.Column.Key),
		zap.String("label", result),
	)

	return nil
}

// publishError publishes an error event for requests that could not be decoded
func (w *Worker) publishError(messageID string, err error) {
	errorEvent := map[string]interface{}{
		"message_id": messageID,
		"error":      err.Error(),
		"worker_id":  w.id,
		"timestamp":  time.Now().UTC(),
	}

	data, marshalErr := json.Marshal(errorEvent)
	if marshalErr != nil {
		w.logger.Error("failed to marshal error event", zap.Error(marshalErr))
		return
	}

	// Publish error to a separate stream
	_, publishErr := w.redisClient.XAdd(w.ctx, &redis.XAddArgs{
		Stream: w.resultStream + ".errors",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if publishErr != nil {
		w.logger.Error("failed to publish error event", zap.Error(publishErr))
	}
}

// acknowledgeMessage acknowledges a message from the stream
func (w *Worker) acknowledgeMessage(messageID string) {
	err := w.redisClient.XAck(w.ctx, w.streamKey, w.consumerGroup, messageID).Err()
	if err != nil {
		w.logger.Error("failed to acknowledge message",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
	}
}
