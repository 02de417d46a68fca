// Package services contains domain services that coordinate behavior across
// aggregates: the carrier dispatch gate that decides when an order may be
// handed to the store's delivery carrier, and the contact visibility policy
// that decides how a customer's phone number is displayed.
package services
