// Package services provides domain services that span aggregates.
//
// The package includes:
//   - DispatchScorer: the pure composite score of a courier for an order
//   - OrderDispatcher: deterministic ranking of dispatch candidates
//   - ScanTokenService: issue and validate signed, time-bounded scan tokens
package services
