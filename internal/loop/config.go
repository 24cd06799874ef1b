package loop

import "time"

// Inactivity thresholds for remote sessions.
const (
	DefaultIdleWarn       = 90 * time.Second
	DefaultIdleDisconnect = 120 * time.Second
)
