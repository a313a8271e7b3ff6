// Package errors provides the structured error type shared by every layer of
// the simulation.
//
// Errors carry a Code, a message, an optional cause and free-form metadata:
//
//	err := errors.ResourceExhausted("roster is full").
//	    WithMeta("team_id", teamID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, team); err != nil {
//	    return errors.Wrap(err, "failed to save team")
//	}
//
// # Severity
//
// Codes split into two groups. InvalidArgument, NotFound, AlreadyExists and
// ResourceExhausted are returned to the caller, who decides what to do next.
// FailedPrecondition, Aborted and DataLoss mean the game state broke an
// invariant (an event pointing at a missing gauge, an empty roster, a
// runaway reaction chain). IsFatal reports the second group; the game
// orchestrator refuses further turns after one.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("max_event_depth", cfg.MaxEventDepth, 1, 1024, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
