// Package controllers implements the screen-level state machines shared by
// every resource view: collection loading with confirm-then-mutate deletes,
// create/edit forms with one-way slug derivation, and single-file uploads.
// Controllers hold no rendering logic; the terminal front-end reads their
// state and forwards operator input through their methods.
package controllers

// UI abstracts the operator-facing prompts controllers need. The terminal
// front-end implements it; tests inject fakes.
type UI interface {
	// Confirm asks for destructive-action confirmation.
	Confirm(prompt string) bool
	// Alert surfaces a non-fatal failure.
	Alert(msg string)
}

// Navigator is invoked when a form wants to return to its collection list.
type Navigator func()
