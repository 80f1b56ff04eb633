// Package health serves liveness and readiness probes for services built on
// friendlyid.
//
// Readiness runs a set of named [Checks] concurrently under one timeout and
// reports each component with its latency. The check signature matches
// db.Healthcheck and redis.Healthcheck:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"postgres": db.Healthcheck(pool),
//		"redis":    redis.Healthcheck(client),
//	}, health.WithLogger(log)))
//
// Handlers answer plain text ("OK" or "Service Unavailable") unless the
// client asks for JSON via ?format=json or the Accept header:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"...","latency_ms":3}}}
//
// [Run] exposes the same report outside HTTP, for startup gating. Its error
// wraps [ErrCheckFailed] or [ErrCheckTimeout] per failing component.
package health
