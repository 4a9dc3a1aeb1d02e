// Package trace exposes what a scene does while it is built and rendered:
// anchor placement, edge routing and per-entity drawing. Tracing is opt-in;
// library code never prints on its own.
package trace
