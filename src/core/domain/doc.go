// Package domain contains the core domain model for the recruit admin write core.
//
// This package defines:
//   - Value Objects: immutable, self-validating wrappers (Email, PhoneNumber, ...)
//   - Aggregates: Company, EventMaster, Event, RecruitYear, EducationalBackground
//   - Outbox Events: to-be-published records written atomically with a state change
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities validate their own invariants at construction and on every transition
//   - Value objects are immutable
package domain
