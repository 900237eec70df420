package redisx

import "time"

const (
	// Closed session: session:revoked:{session_id} -> "1", expires with the token
	KeySessionRevoked = "session:revoked:%s"

	// Admin dashboard stats: stats:admin -> backend stats JSON
	KeyAdminStats = "stats:admin"
)

var (
	TTLStatsCache = 30 * time.Second
)
