// Package chaucha provides the data model and the profile store of a
// personal finance tracker. It is local-first: the whole user profile is a
// single JSON document kept on the user's device, rewritten on every change.
//
// The core functionalities include:
//   - Profile Model: the UserData aggregate with its fixed expenses, savings
//     goals and transaction history.
//   - Profile Store: the single owner of the aggregate. It mediates every
//     read and write, persists each change before anyone can observe it, and
//     notifies subscribers with the new snapshot.
//   - Derived Metrics: the variable expense breakdown by category, the monthly
//     budget and the dashboard figures, always recomputed from the profile.
//   - Import/Export: bank statement CSV import of transactions and CSV export
//     of the variable expense breakdown.
//
// This package serves as the foundational logic for the `chaucha`
// command-line tool and its local HTTP API.
package chaucha
