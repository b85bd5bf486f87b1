// Package domain contains the core domain entities and types of the report
// engine. These types represent the business concepts (reports, transaction
// facts, determinations, parties, filings) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
