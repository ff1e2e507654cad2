// Package stream runs outcomes through channel-connected stages with a
// fixed number of worker lines per stage. Outcomes here carry error as
// their error payload; a context cancellation becomes a failure wrapping
// ErrCancelled or the context's own error.
//
// Common usage:
// - ToChanManyOutcomes: feed values into the first stage
// - Run/Turnout: drive an Engine over an input channel with N lines
// - Validate/Switch/Map/Try/Tee/DoubleTee: lift solo helpers into Engines
// - Finally: collapse each outcome into a plain value
// - WithWorkerOptions/WithProcessOptions: per-pipeline settings carried in
// the context
package stream
