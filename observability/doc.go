// Package observability provides OpenTelemetry tracing and metrics for
// credseal operations.
//
// Exporters are only started when observability is enabled in
// configuration; otherwise the global no-op providers stay in place and
// instrumented code pays almost nothing.
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability, "credseal", version, env)
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("credseal"))
//	ctx, op := observability.StartOperation(ctx, "credentials", "seal_login", metrics)
//	defer op.End(ctx, err)
package observability
