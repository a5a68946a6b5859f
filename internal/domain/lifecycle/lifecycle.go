// Package lifecycle holds shared timing constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second
