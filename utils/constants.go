// File: utils/constants.go
package utils

import "time"

// ProjectionCachePrefix is the prefix used for Redis projection cache keys.
const ProjectionCachePrefix = "proj:"

// ProjectionCacheTTL is the time-to-live for cached timetable projections.
const ProjectionCacheTTL = 5 * time.Minute
