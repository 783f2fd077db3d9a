// Package services defines shared error utilities consumed by the cleaning
// orchestrator and external integrations.
//
// The sentinel markers classify failures from the external tool and the
// surrounding plumbing so callers can branch on error category with errors.Is
// while keeping human-readable component: operation: detail messages.
package services
