package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"photobooth-pipeline/core/models"

	"github.com/redis/go-redis/v9"
)

// Queue keys, one Redis list per task kind. Delivery is at-least-once and no
// ordering holds across different lists; workers must tolerate redelivery.
const (
	KeyTransform        = "tasks:transform"
	KeyExportDispatch   = "tasks:export-dispatch"
	KeyThirdPartyExport = "tasks:third-party-export"
	KeyEmailDelivery    = "tasks:email-delivery"
)

// Client enqueues downstream tasks as JSON payloads on Redis lists. It
// performs no retries; callers decide whether a failed enqueue is fatal.
type Client struct {
	redis *redis.Client
}

// NewClient wraps an already-connected Redis client
func NewClient(rdb *redis.Client) *Client {
	return &Client{redis: rdb}
}

// EnqueueTransform pushes the first stage of the job chain
func (c *Client) EnqueueTransform(ctx context.Context, task models.TransformTask) error {
	return c.push(ctx, KeyTransform, task)
}

// EnqueueExportDispatch pushes the export fan-out stage
func (c *Client) EnqueueExportDispatch(ctx context.Context, task models.ExportDispatchTask) error {
	return c.push(ctx, KeyExportDispatch, task)
}

// EnqueueThirdPartyExport pushes a task for the external export integration
func (c *Client) EnqueueThirdPartyExport(ctx context.Context, task models.ThirdPartyExportTask) error {
	return c.push(ctx, KeyThirdPartyExport, task)
}

// EnqueueEmailDelivery pushes a guest result email for the mailer
func (c *Client) EnqueueEmailDelivery(ctx context.Context, task models.EmailDeliveryTask) error {
	return c.push(ctx, KeyEmailDelivery, task)
}

func (c *Client) push(ctx context.Context, key string, task interface{}) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	if err := c.redis.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("push to %s: %w", key, err)
	}
	return nil
}
