package errs

import (
	"errors"
	"net/http"
	"testing"

	"edu-client/util/httpclient"
)

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "input validation", err: InputValidationError("bad"), want: http.StatusBadRequest},
		{name: "unauthenticated", err: UnauthenticatedError("sign in"), want: http.StatusUnauthorized},
		{name: "authorization", err: AuthorizationError("no"), want: http.StatusForbidden},
		{name: "not found", err: ResourceNotFoundError("missing"), want: http.StatusNotFound},
		{name: "conflict", err: ConflictError("busy"), want: http.StatusConflict},
		{name: "business rule", err: BusinessRuleError("broke"), want: http.StatusUnprocessableEntity},
		{name: "remote unavailable", err: RemoteUnavailableError("down"), want: http.StatusBadGateway},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetStatusCode(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHandleRemoteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantType    ErrorType
		wantMessage string
	}{
		{
			name:        "404 becomes not found",
			err:         &httpclient.RemoteError{StatusCode: 404, Message: "course not found"},
			wantType:    TypeResourceNotFound,
			wantMessage: "course not found",
		},
		{
			name:        "409 becomes conflict",
			err:         &httpclient.RemoteError{StatusCode: 409, Message: "already enrolled"},
			wantType:    TypeConflict,
			wantMessage: "already enrolled",
		},
		{
			name:        "other 4xx keeps remote message verbatim",
			err:         &httpclient.RemoteError{StatusCode: 422, Message: "insufficient balance"},
			wantType:    TypeBusinessRule,
			wantMessage: "insufficient balance",
		},
		{
			name:     "5xx becomes remote unavailable",
			err:      &httpclient.RemoteError{StatusCode: 500, Message: "oops"},
			wantType: TypeRemoteUnavailable,
		},
		{
			name:     "transport error becomes remote unavailable",
			err:      errors.New("connection refused"),
			wantType: TypeRemoteUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := HandleRemoteError(tt.err)
			if appErr.Type != tt.wantType {
				t.Fatalf("expected type %s, got %s", tt.wantType, appErr.Type)
			}
			if len(tt.wantMessage) > 0 && appErr.Message != tt.wantMessage {
				t.Fatalf("expected message %q, got %q", tt.wantMessage, appErr.Message)
			}
		})
	}
}
