// Package devices serves the hardware inventory: global device search with a
// keyword fallback for model queries, per-user device rollups, fleet
// summaries, assignment audits, warranty alerts, and lifecycle statistics.
package devices
