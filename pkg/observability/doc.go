/*
Package observability exposes Prometheus metrics for Hanoi games.

Metrics are fed from domain.LifecycleHooks, so the rules engine stays free of
any instrumentation dependency:

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	state, _ := domain.NewState(domain.WithHooks(m.Hooks()))

A process without an HTTP endpoint can still dump the registry in the text
exposition format with WriteText.
*/
package observability
