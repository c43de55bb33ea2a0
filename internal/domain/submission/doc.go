// Package submission contains the form submission bounded context.
// It classifies raw checklist and document submissions captured by the
// dynamic web forms, partitions their fields into ordered display sections,
// formats values for display, extracts material order line items and builds
// "Mark N/A" patches. Everything in this package is a pure function of its
// inputs; persistence and transport belong to the callers.
package submission
