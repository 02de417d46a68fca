// Package order provides domain entities and business logic for customer
// order management in the storefront. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a customer name, phone, region, and a product snapshot
//   - The total is always unit price x quantity + delivery fee, recomputed on
//     every change to one of its operands
//   - Any status may be set by the merchant except in_carrier, which is
//     reachable only through the carrier dispatch gate
//   - in_carrier is terminal: once entered, status changes are rejected and
//     only the note remains editable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
