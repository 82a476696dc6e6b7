// Package fornance implements a personal finance tracking client: a cash
// balance, fixed and percentage expenses, budget allocation plans and a
// derived activity log, with multi-currency support through an external
// exchange rate provider.
//
// All state lives in a Store and is persisted to a local, versioned JSON
// document. Collaborators observe the store through snapshots and mutate it
// through its operations; every mutation is atomically paired with a
// human-readable activity entry.
package fornance
