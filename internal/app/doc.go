// Package app wires the generator's lifecycle together: it builds the
// run's logger and configuration, loads every registry document, assembles
// the resolved model, and hands it to the emitter.
package app
