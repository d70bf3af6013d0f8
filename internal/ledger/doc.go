// Package ledger is the period-accounting engine.
//
// Every function is pure: callers pass a snapshot of transactions, budgets and
// settings and get derived values back. Nothing here touches the clock, the
// database or the network; "today" and the current accounting period are
// always arguments.
package ledger
