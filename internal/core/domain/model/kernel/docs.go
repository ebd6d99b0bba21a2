// Package kernel provides the shared value objects of the dispatch domain:
// identifiers (UUID) and planar coordinates (GeoPoint).
//
// Both are immutable, safe for concurrent use and invalid as zero values;
// construct them through their factory functions.
package kernel
