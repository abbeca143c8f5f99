// Package timeouts centralizes the context deadlines used around database
// work in HTTP handlers.
//
// Guidelines:
//   - Ping: health checks
//   - Short: single-document reads, session bookkeeping
//   - Medium: list queries, deletes
//   - Long: the analytics aggregation, which touches four collections per
//     user and is the slowest operation in the system
package timeouts

import "time"

const (
	// Ping bounds health-check connectivity probes.
	Ping = 2 * time.Second
	// Short bounds simple lookups.
	Short = 5 * time.Second
	// Medium bounds list queries and single deletes.
	Medium = 10 * time.Second
	// Long bounds the analytics fan-out load.
	Long = 60 * time.Second
)
