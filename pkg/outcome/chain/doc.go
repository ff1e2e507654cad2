// Package chain provides a fluent wrapper around outcome.Outcome for
// building synchronous railway chains that carry a context.Context.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then/Map/Recover/Ensure: same-type steps as methods
// - To/MapTo/MapError/OrElse/ThenTry: steps that change a type parameter,
// as functions (Go methods cannot introduce type parameters)
// - RepeatUntil/While: loop a step while the chain stays on success
// - Or/And: pick among several chains
// - Finally: collapse the chain into a final value
package chain
