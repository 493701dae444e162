package services

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// streamPollInterval is how often a live stream re-checks its path for
// changes. Every change pushes the FULL current snapshot — subscribers
// rebuild their view wholesale, they never merge deltas.
const streamPollInterval = 2 * time.Second

// SnapshotFunc materializes the full current value of a subscribed path for
// one account, plus a cheap version tag (row count + latest timestamp). The
// stream only pushes when the version changes.
type SnapshotFunc func(accountID string) (payload interface{}, version string, err error)

// StreamSnapshots serves one live subscription over SSE. The handle is
// acquired from the registry first: if the same account already streams the
// same feature, the prior handle is cancelled — one push always means exactly
// one redraw per client, never N.
func StreamSnapshots(c *fiber.Ctx, registry *StreamRegistry, feature Feature, snap SnapshotFunc) error {
	accountID := c.Locals("user_id").(string)

	ctx, release := registry.Acquire(context.Background(), accountID, feature)

	// SSE headers
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no") // nginx

	reqCtx := c.Context()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer release()

		ticker := time.NewTicker(streamPollInterval)
		defer ticker.Stop()

		var lastVersion string

		// Initial keepalive (comment event)
		w.WriteString(":\n\n")
		w.Flush()

		push := func() bool {
			payload, version, err := snap(accountID)
			if err != nil {
				log.Printf("[STREAM] %s snapshot error for %s: %v", feature, accountID, err)
				return true
			}
			if version == lastVersion {
				return true
			}
			lastVersion = version

			data, err := json.Marshal(payload)
			if err != nil {
				log.Printf("[STREAM] %s marshal error for %s: %v", feature, accountID, err)
				return true
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", feature, data)
			if err := w.Flush(); err != nil {
				// Client disconnected
				return false
			}
			return true
		}

		// A live subscription fires with the current value on attach.
		if !push() {
			return
		}

		for {
			select {
			case <-ticker.C:
				if !push() {
					return
				}
			case <-ctx.Done():
				// Handle replaced or session torn down
				return
			case <-reqCtx.Done():
				// Client closed connection
				return
			}
		}
	})

	return nil
}
