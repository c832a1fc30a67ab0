package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so content tooling can match on
// the failure class without string-comparing messages.
const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"
)

// categorize wraps err with a category and text code unless a handler further
// down already categorized it; the innermost classification wins.
func categorize(err error, category goerrors.Category, msg, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return categorize(err, goerrors.CategoryValidation, "command validation failed", commandValidationCode)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return categorize(err, goerrors.CategoryCommand, "command execution cancelled", commandContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return categorize(err, goerrors.CategoryCommand, "command execution deadline exceeded", commandContextTimeout)
	default:
		return categorize(err, goerrors.CategoryCommand, "command context error", commandContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	return categorize(err, goerrors.CategoryCommand, "command execution failed", commandExecuteFailed)
}
