package client

import (
	"errors"
	"fmt"
	"net"
)

// Kind is the closed classification of everything that can go wrong between
// issuing a request and handing a typed result to the caller. Classification
// happens exactly once, at the network boundary; callers branch on Kind,
// never on raw status codes.
type Kind string

const (
	// KindTransport covers failures that never produced a status code:
	// timeouts, connection refusal, DNS resolution.
	KindTransport Kind = "transport"

	// KindAuth is a 401: missing or invalid API key.
	KindAuth Kind = "auth"

	// KindPayment is a 402: the account has no credits left.
	KindPayment Kind = "payment"

	// KindInvalidParams is a 400, or a query builder rejection caught
	// before dispatch.
	KindInvalidParams Kind = "invalid_params"

	// KindServer is any other non-2xx status, carrying status and body.
	KindServer Kind = "server"

	// KindParse means the response body did not match the expected shape.
	KindParse Kind = "parse"

	// KindConfig means the client was constructed without a credential.
	KindConfig Kind = "config"
)

// Error is the typed error surfaced by every client operation.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status > 0 && e.Detail != "":
		return fmt.Sprintf("krystal %s error (status %d): %s", e.Kind, e.Status, e.Detail)
	case e.Status > 0:
		return fmt.Sprintf("krystal %s error (status %d)", e.Kind, e.Status)
	case e.Err != nil && e.Detail != "":
		return fmt.Sprintf("krystal %s error: %s: %v", e.Kind, e.Detail, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("krystal %s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("krystal %s error: %s", e.Kind, e.Detail)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether retrying the same request can succeed.
// Exactly transport failures and 5xx server failures qualify; everything
// else is terminal on first occurrence.
func (e *Error) Retryable() bool {
	if e.Kind == KindTransport {
		return true
	}
	return e.Kind == KindServer && e.Status >= 500 && e.Status <= 599
}

// Remediation returns a human-readable suggested action, kept separate from
// the technical detail so the CLI layer can print both.
func (e *Error) Remediation() string {
	switch e.Kind {
	case KindAuth:
		return "Check that your API key is correct and has the required permissions."
	case KindPayment:
		return "Your account has no remaining credits. Top up your balance to continue."
	case KindInvalidParams:
		return "Adjust the request parameters and try again."
	case KindTransport:
		var netErr net.Error
		if errors.As(e.Err, &netErr) && netErr.Timeout() {
			return "Request timed out. Try again or check your internet connection."
		}
		return "Could not reach the API. Check your internet connection."
	case KindServer:
		if e.Status >= 500 {
			return "The API is currently having trouble. Retry later."
		}
		return "The API rejected the request. Check the request and try again."
	case KindParse:
		return "The response did not match the expected shape; the API may have changed."
	case KindConfig:
		return "Set KRYSTAL_API_KEY or pass an API key explicitly."
	default:
		return "See the error detail."
	}
}

// IsRetryable reports whether err is a retryable client error.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAuth
}

// IsPaymentRequired reports whether err is a payment-required failure.
func IsPaymentRequired(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindPayment
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Detail: "HTTP request failed", Err: err}
}

func invalidParams(detail string) *Error {
	return &Error{Kind: KindInvalidParams, Detail: detail}
}

func invalidParamsStatus(detail string) *Error {
	return &Error{Kind: KindInvalidParams, Status: 400, Detail: detail}
}

func authError() *Error {
	return &Error{Kind: KindAuth, Status: 401, Detail: "missing or invalid API key"}
}

func paymentError() *Error {
	return &Error{Kind: KindPayment, Status: 402, Detail: "no credit left"}
}

func serverError(status int, detail string) *Error {
	return &Error{Kind: KindServer, Status: status, Detail: detail}
}

func parseError(detail string, err error) *Error {
	return &Error{Kind: KindParse, Detail: detail, Err: err}
}

func configError(detail string) *Error {
	return &Error{Kind: KindConfig, Detail: detail}
}
