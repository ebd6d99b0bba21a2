// Package courier implements the Courier aggregate: the roster entry that
// dispatch scores and the lifecycle claims and releases.
//
// The package includes:
//   - Courier: identity, last known position, shift status, workload, rating,
//     response latency, balance and lifetime delivery count
//   - Status: OFFLINE, ONLINE or BUSY
//
// Key business rules:
//   - only ONLINE and BUSY couriers may be claimed for an order
//   - position updates are last-write-wins and older pings are ignored
//   - a BUSY courier returns to ONLINE when its workload drops to zero
//   - the balance may go negative (debt)
package courier
