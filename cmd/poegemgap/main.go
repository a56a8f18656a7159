// Package main provides the poegemgap CLI.
//
// poegemgap downloads Path of Exile gem price snapshots and reports which
// gems are profitable to regrade with a Prime or Secondary Regrading Lens.
//
// Usage:
//
//	poegemgap fetch --league Ancestor
//	poegemgap analyze --guaranteed
//	poegemgap watch --schedule "@hourly"
//
// See --help for all available options.
package main

func main() {
	Execute()
}
