package worker

import (
	"context"
	"time"

	"courtcrowd/internal/delivery/worker/handler"
)

const (
	defaultMaxAttempts  = 5
	defaultRetryBackoff = time.Second
)

// processWithRetry runs the processor until the event is delivered, fails permanently
// or maxAttempts is reached, sleeping attempt*backoff between tries.
// ok is false when ctx ended before the event was settled.
func processWithRetry(
	ctx context.Context,
	processor *handler.EventProcessor,
	data []byte,
	requestID string,
	maxAttempts int,
	backoff time.Duration,
) (attempts int, ok bool, err error) {
	for attempt := 1; ; attempt++ {
		err = processor.Process(ctx, data, requestID)
		if err == nil || !handler.IsRetryableError(err) || attempt >= maxAttempts {
			return attempt, true, err
		}

		select {
		case <-ctx.Done():
			return attempt, false, err
		case <-time.After(time.Duration(attempt) * backoff):
		}
	}
}
