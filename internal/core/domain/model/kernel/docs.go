// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validated constructors that form the
// building blocks for aggregates such as orders and stores.
package kernel
