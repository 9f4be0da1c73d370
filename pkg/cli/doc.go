// Package cli provides the command-line interface for faultinject.
//
// The CLI is a driver for a harness embedded in another process: the
// process under test runs the admin API next to its workload, and these
// commands steer it over HTTP:
//   - arm: arm the failure countdown (flags or a plan file)
//   - disable: disarm injection and clear jitter and scope
//   - status: show the current plan and activity counters
//   - health: check that the admin API is reachable
//
// The admin URL comes from --admin-url, FAULTINJECT_ADMIN_URL, or the
// default http://localhost:4295.
//
// Usage:
//
//	faultinject arm --countdown 3 --scope '^store'
//	faultinject arm --file plan.yaml
//	faultinject status --json
//	faultinject disable
package cli
