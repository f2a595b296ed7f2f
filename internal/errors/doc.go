// Package errors provides structured error handling for the weapon generator.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping consumed by the fiber error handler
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// Creating errors:
//
//	err := errors.NotFound("job not found")
//	err := errors.InvalidArgumentf("invalid weapon count: %d", count)
//
// Adding metadata:
//
//	err := errors.NotFound("job not found").WithMeta("job_id", jobID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get job")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // handle the 404 case
//	}
//
// Layer guidelines: repositories return domain errors (NotFound) with IDs in
// metadata; orchestrators validate inputs (InvalidArgument) and surface
// catalog defects (FailedPrecondition); handlers return errors unchanged and
// let FiberErrorHandler shape the response. Text and mesh backend failures
// are never converted to errors at all - the orchestrators absorb them with
// deterministic fallbacks.
package errors
