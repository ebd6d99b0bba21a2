// Package order implements the Order aggregate and its delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding status, courier binding, GPS trace and scan token
//   - Status: the lifecycle enum with a single explicit transition table
//   - TrackPoint: an entry of the append-only GPS trace
//
// Key business rules:
//   - CREATED -> PENDING -> PROCESSING -> ASSIGNED -> PICKED_UP -> DELIVERING -> COMPLETED
//   - an order may be assigned from CREATED, PENDING or PROCESSING
//   - any non-terminal order may be cancelled; COMPLETED and CANCELLED are terminal
//   - a courier is bound exactly while ASSIGNED, PICKED_UP, DELIVERING or COMPLETED
//   - a rejected transition returns InvalidTransitionError and changes nothing
package order
