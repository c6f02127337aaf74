// Package portfolio serves the paid-account ledger: software spend rollups,
// cost optimization audits, privileged-access and contractor reviews, and
// portfolio analytics by service, department, and job title.
package portfolio
