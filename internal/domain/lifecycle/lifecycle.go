// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
