// Package finview provides the core types and logic for a terminal
// dashboard over spreadsheet-backed financial statements. It is designed to
// keep all interaction state explicit and testable, independent of any
// rendering or transport layer.
//
// The core functionalities include:
//   - Statement Records: One record per reporting year, mapping indicator
//     names to values, preserving the spreadsheet's indicator order and
//     carrying optional percentage annotations.
//   - Table Shaping: A stateless projection of a tab's records into a
//     rows-by-years table, filtered by the years the user keeps selected.
//   - Selection Engine: Spreadsheet-style cell, row and column selection
//     with click, toggle, range and drag semantics over the shaped table.
//   - Dashboard Controller: A small state machine that sequences tab
//     discovery, record loading and user events, and discards responses
//     that a newer request has superseded.
//
// This package serves as the foundational logic for the `fv` command-line
// tool and its terminal dashboard, ensuring that every surface renders the
// same state the same way.
package finview
