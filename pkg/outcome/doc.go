// Package outcome provides Outcome[T, E], a value that holds exactly one of a
// success payload T or an error payload E.
//
// Highlights:
// - Success/Failure: construct an Outcome; MakeSuccess/MakeError tag a value
// first when T and E are the same type
// - Ok/Fail/Status: the payload-less success case (T = Unit)
// - Value/Error/ValueOr/Get: read the active payload
// - Transform/TransformError/AndThen/OrElse: compose without inspecting the
// discriminant at each step
//
// Calling Value on a failure or Error on a success panics with an
// *AccessError wrapping ErrAccess. The panic is recoverable; use TryValue,
// TryError or Catch to get the error instead.
package outcome
