package domain

import (
	"errors"
	"testing"
)

func TestResponse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		resp    Response
		wantErr error
	}{
		{
			name: "Menu",
			resp: NewMenu(RootKey, "Pick a topic", "Billing", "Support"),
		},
		{
			name: "Answer",
			resp: NewAnswer("Support", "Support is open 9-5."),
		},
		{
			name:    "Menu Without Options",
			resp:    NewMenu(RootKey, "Pick a topic"),
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "Empty Option",
			resp:    NewMenu(RootKey, "Pick", "Billing", ""),
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "Duplicate Option",
			resp:    NewMenu(RootKey, "Pick", "Billing", "Billing"),
			wantErr: ErrMalformedResponse,
		},
		{
			name: "Both Variants",
			resp: Response{
				Kind:   KindMenu,
				Menu:   &MenuNode{Question: "q", Options: []string{"a"}},
				Answer: &AnswerNode{Answer: "a"},
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "Unknown Kind",
			resp:    Response{},
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "Error Variant",
			resp:    NewError(&TransportError{StatusCode: 500}),
			wantErr: ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorKind(t *testing.T) {
	tests := map[string]error{
		"transport":   &TransportError{Err: errors.New("connection refused")},
		"malformed":   Malformed("neither question nor answer"),
		"invalid_key": ErrInvalidKey,
		"internal":    errors.New("boom"),
	}
	for want, err := range tests {
		if got := ErrorKind(err); got != want {
			t.Errorf("ErrorKind(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := &TransportError{Err: cause}
	if !errors.Is(err, ErrTransport) || !errors.Is(err, cause) {
		t.Errorf("expected error to match both sentinel and cause, got %v", err)
	}
	status := &TransportError{StatusCode: 503}
	if status.Error() != "decision api transport failure: unexpected status 503" {
		t.Errorf("unexpected message %q", status.Error())
	}
}

func TestNavigationState(t *testing.T) {
	s := NewState()
	if !s.AtRoot() || s.Phase != PhaseIdle {
		t.Fatalf("unexpected startup state %+v", s)
	}
	if Displayed("Billing", KindMenu).AtRoot() {
		t.Error("non-root key reported as root")
	}
	if !Displayed("Support", KindAnswer).Terminal() {
		t.Error("answer state must be terminal")
	}
	if !Failed(RootKey).Terminal() {
		t.Error("failed state must be terminal")
	}
	if Displayed(RootKey, KindMenu).Terminal() {
		t.Error("menu state must await an action")
	}
}
