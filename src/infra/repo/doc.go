// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository is responsible for a specific domain aggregate.
//
// Naming convention:
//   - Files: postgres_<entity>.go (e.g., postgres_company.go)
//   - Types: Postgres<Entity>Repository (e.g., PostgresCompanyRepository)
//
// All repositories receive the database pool via constructor injection and
// translate storage error codes into the domain taxonomy at this boundary;
// raw driver errors never reach callers unless they are unclassified (fatal).
//
// The recruit year repository is the transactional-outbox unit of work: its
// Create and Update write the aggregate row and one pending outbox row inside
// a single transaction via withTx, so neither is visible without the other.
package repo
