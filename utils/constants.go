// File: utils/constants.go
package utils

import "time"

// RateLimitKeyPrefix is the prefix used for Redis rate-limit counters.
const RateLimitKeyPrefix = "ratelimit:"

// CachePingTimeout bounds the Redis reachability check at startup.
const CachePingTimeout = 2 * time.Second
