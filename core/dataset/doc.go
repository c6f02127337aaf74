// Package dataset implements the record store backing every report.
//
// Three flat CSV exports are loaded into an immutable in-memory Snapshot:
//
//   - the employee provisioning matrix (fixed identity columns plus one
//     column per tracked SaaS service)
//   - the device inventory
//   - the app-cost portfolio (one row per account a user holds in an app)
//
// A Source memoizes the Snapshot for the process lifetime: the first call
// parses the files, later calls return the cached value. Concurrent first
// access is funneled through singleflight so the files are only read once.
// Reset discards the cached Snapshot; the next call re-reads the files.
//
// Records are never mutated after load. Cross-dataset consistency is not
// enforced here - device and portfolio rows reference employees by email as a
// soft reference, and dangling references are exactly what the reconcile
// feature reports on.
//
// Malformed rows (fewer columns than the schema requires) are skipped
// silently; row-level data quality issues are business as usual for these
// exports. A missing or unreadable file is an error, since every report is
// meaningless without its data.
package dataset
