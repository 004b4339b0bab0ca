// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart and OnStop hooks that talk to external systems.
const DefaultTimeout = 15 * time.Second
