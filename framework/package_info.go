// Package framework contains a flat test runner that is run as regular Go application code
// rather than as Go tests.
//
// The general model is:
//
// 1. Tests are registered with an Engine under globally unique names. Each test is a function
// that receives a *T, which is used similarly to Go's *testing.T and implements require.TestingT
// so that standard testify assertions can be used.
//
// 2. The Engine runs the tests one at a time, in registration order, and reports progress through
// a TestLogger. ConsoleTestLogger writes the familiar "test <name> ... ok (<N>ms)" lines and the
// final "test result:" summary.
//
// 3. Higher-level code can take over part of the per-test line by registering a test as
// SelfReporting, in which case the engine writes only the prefix and the timing suffix.
package framework
