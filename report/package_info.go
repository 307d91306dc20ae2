// Package report renders a hierarchy of test cases as indented console output while a flat engine
// runs them, and collects the failures shown at the end of the run.
//
// Output is produced in fragments that are interleaved with the engine's own per-test lines, so
// every fragment is written and flushed as soon as it is known.
package report
