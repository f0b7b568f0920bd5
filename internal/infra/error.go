package infra

import (
	"errors"
	"log/slog"

	"tastybite-booking/internal/pkg/errs"
)

type ClientErrorKind string

type ClientError struct {
	Kind ClientErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e ClientError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e ClientError) Unwrap() error {
	return e.err
}

func WrapClientErr(slogger *slog.Logger, kind ClientErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}

	slogger.Error("Upstream client error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return ClientError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ClientErrorKind) bool {
	var e ClientError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Upstream-specific error kinds
const (
	KindUnauthorized    ClientErrorKind = "UNAUTHORIZED"
	KindNotFound        ClientErrorKind = "NOT_FOUND"
	KindConflict        ClientErrorKind = "CONFLICT"
	KindBadRequest      ClientErrorKind = "BAD_REQUEST"
	KindUpstreamFailure ClientErrorKind = "UPSTREAM_FAILURE"
	KindBadResponse     ClientErrorKind = "BAD_RESPONSE"
)
