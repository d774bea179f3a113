// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Add validation tags for request binding
//   - Version the API without changing domain models
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateCompanyRequest)
//   - Response types: <Resource>Response (e.g., CompanyResponse)
//
// Request bodies carry only caller-supplied fields; the acting user comes
// from the X-Actor header, and audit fields are stamped by the domain layer.
package dto
