// Package reconcile joins the three exports: complete per-employee IT
// profiles, device-assignment mismatch audits, provisioning-vs-portfolio
// reconciliation with a sync health score, unified service views, and
// onboarding/offboarding checklists.
package reconcile
