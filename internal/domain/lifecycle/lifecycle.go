package lifecycle

import "time"

// DefaultTimeout bounds shutdown hooks.
const DefaultTimeout = 10 * time.Second
