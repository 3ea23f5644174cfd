// Package budget provides the core logic for tracking personal budgeting
// data: named, time-bounded budget periods and dated income/outgoing
// transactions. It is designed to be local-first and auditable, keeping the
// full state in two human-readable JSON files.
//
// The core functionalities include:
//   - Ledger Management: an in-memory authoritative store of periods and
//     transactions exposing the full CRUD surface, persisted after every
//     mutation.
//   - Attachment: the policy linking each transaction to at most one budget
//     period, the one whose date range strictly contains the transaction
//     date (period boundaries excluded).
//   - Data Persistence: encoding and decoding the two collections to and
//     from human-readable, version-controllable JSON files, replaced
//     atomically on every save.
//
// This package serves as the foundational logic for the `bcs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package budget
