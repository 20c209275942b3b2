// Package app is the controller core of weather.
//
// All mutable application state lives in a single State value owned by the
// caller. Input arrives as a Message; Update resolves key events against the
// key binding table and runs the result through Transition, which mutates the
// state and returns Effects. An Orchestrator turns each Effect into a Cmd that
// performs the side effect and yields at most one follow-up Message. Present
// derives a ViewModel from the state on every render.
//
// The package does not depend on any terminal or rendering library.
package app
