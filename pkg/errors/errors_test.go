package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "loading page",
			expected: "",
		},
		{
			name:     "wrap sentinel",
			err:      ErrPageNotFound,
			msg:      "loading page",
			expected: "loading page: page not found",
		},
		{
			name:     "wrap with empty message",
			err:      errors.New("original error"),
			msg:      "",
			expected: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "wrapf nil error",
			err:      nil,
			format:   "page %s",
			args:     []interface{}{"wallets"},
			expected: "",
		},
		{
			name:     "wrapf sentinel",
			err:      ErrRender,
			format:   "page %s",
			args:     []interface{}{"wallets"},
			expected: "page wallets: failed to render tabs",
		},
		{
			name:     "wrapf with multiple args",
			err:      errors.New("original error"),
			format:   "page %s has %d tabs",
			args:     []interface{}{"wallets", 3},
			expected: "page wallets has 3 tabs: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrapf(tt.err, tt.format, tt.args...)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestDetailConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "unknown platform",
			err:      ErrUnknownPlatformWithDetails([]string{"iso", "andriod"}),
			sentinel: ErrUnknownPlatform,
			expected: "unknown platform: iso, andriod",
		},
		{
			name:     "unsupported version",
			err:      ErrUnsupportedConfigVersionWithDetails("2.1", ">= 1.0, < 2.0"),
			sentinel: ErrUnsupportedConfigVersion,
			expected: `unsupported config version: "2.1" (supported: >= 1.0, < 2.0)`,
		},
		{
			name:     "empty page name",
			err:      ErrEmptyPageNameWithIndex(2),
			sentinel: ErrEmptyPageName,
			expected: "page name cannot be empty at index 2",
		},
		{
			name:     "page exists",
			err:      ErrPageExistsWithName("wallets"),
			sentinel: ErrPageExists,
			expected: "page already exists: wallets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("Expected error to match sentinel %v", tt.sentinel)
			}
		})
	}
}
