// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
