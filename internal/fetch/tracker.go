// Package fetch keeps one request generation alive per watched input.
//
// A view calls Begin whenever its inputs change. Begin cancels whatever the
// previous generation was doing and hands back a fresh context and token.
// Results are tagged with the token; only the current token is applied, so a
// slow response for an old input can never overwrite a newer one.
package fetch

import (
	"context"

	"github.com/google/uuid"
)

// Tracker is owned by a single Bubble Tea model and is only touched from its
// Update loop; it is not safe for concurrent use.
type Tracker struct {
	token  string
	cancel context.CancelFunc
}

// Begin cancels the in-flight generation, if any, and starts a new one.
func (t *Tracker) Begin(parent context.Context) (context.Context, string) {
	t.Cancel()
	ctx, cancel := context.WithCancel(parent)
	t.token = uuid.NewString()
	t.cancel = cancel
	return ctx, t.token
}

// Current reports whether token belongs to the live generation.
func (t *Tracker) Current(token string) bool {
	return token != "" && token == t.token
}

// Pending reports whether a generation is in flight.
func (t *Tracker) Pending() bool {
	return t.token != ""
}

// Done releases the generation identified by token once its result has been
// applied. Stale tokens are ignored.
func (t *Tracker) Done(token string) {
	if !t.Current(token) {
		return
	}
	t.cancel()
	t.token = ""
	t.cancel = nil
}

// Cancel aborts the in-flight generation without starting a new one.
func (t *Tracker) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
	t.token = ""
	t.cancel = nil
}
