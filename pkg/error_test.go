package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestClass_String(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{ClassNone, "none"},
		{ClassTimeout, "timeout"},
		{ClassProtocol, "protocol"},
		{ClassNotInitialized, "not-initialized"},
		{ClassUnresolved, "unresolved"},
		{ClassMisuse, "misuse"},
		{ClassFailed, "failed"},
		{Class(99), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.class.String(); got != tt.want {
				t.Errorf("Class.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClass_Error(t *testing.T) {
	tests := []struct {
		class   Class
		wantErr error
	}{
		{ClassNone, nil},
		{ClassTimeout, ErrTransportTimeout},
		{ClassProtocol, ErrProtocol},
		{ClassNotInitialized, ErrNotInitialized},
		{ClassUnresolved, ErrFileUnresolved},
		{ClassMisuse, ErrStreamMisuse},
		{ClassFailed, ErrCardFailed},
		{ClassOther, nil},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			err := tt.class.Error()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Class.Error() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Class.Error() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"nil", nil, ClassNone},
		{"timeout", fmt.Errorf("read block 7: %w", ErrTransportTimeout), ClassTimeout},
		{"protocol", fmt.Errorf("cmd17: %w", ErrProtocol), ClassProtocol},
		{"end of media", ErrEndOfMedia, ClassProtocol},
		{"not initialized", ErrNotInitialized, ClassNotInitialized},
		{"unresolved", fmt.Errorf("open: %w", ErrFileUnresolved), ClassUnresolved},
		{"misuse", ErrStreamMisuse, ClassMisuse},
		{"failed", ErrCardFailed, ClassFailed},
		{"unsupported", ErrUnsupportedCard, ClassFailed},
		{"other", errors.New("spi: bus closed"), ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
