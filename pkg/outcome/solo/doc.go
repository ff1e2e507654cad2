// Package solo contains single-value, synchronous railway helpers that
// operate on outcome.Outcome values and carry a context.Context through
// each step. They build on the combinators in package outcome.
//
// Highlights:
// - Succeed/Fail: construct an Outcome
// - Validate/AndValidate/ValidateAll: turn a failed check into a failure
// - Switch: move from Outcome[In, E] to Outcome[Out, E]
// - Map/DoubleMap: transform the success value (and observe the error)
// - Try/FailOnError: call a function returning an error and convert it
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join: fold a series of steps with a combining function
package solo
