// Package ports defines the contracts between the application core and its
// adapters: repositories with explicit atomic update methods, the unit of
// work, and the outbound notification, event and position-cache capabilities.
package ports
