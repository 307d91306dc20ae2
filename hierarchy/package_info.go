// Package hierarchy is the in-memory model of a test plan: plans contain suites, suites contain
// suites and cases. A tree is declared through a Builder using nested closures and becomes
// immutable once Build returns.
package hierarchy
