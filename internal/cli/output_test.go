package cli

import (
	"strings"
	"testing"

	"github.com/example/checkdigit/internal/config"
	"github.com/example/checkdigit/internal/ports/primary"
)

func TestResolveBatchArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		cfg        *config.Config
		stdin      string
		wantMethod string
		wantInputs []string
		wantErr    bool
	}{
		{
			name:       "method and numbers from args",
			args:       []string{"ean8", "9638507", "1234567"},
			wantMethod: "ean8",
			wantInputs: []string{"9638507", "1234567"},
		},
		{
			name:       "numbers from stdin",
			args:       []string{"ean8"},
			stdin:      "9638507\n1234567\n",
			wantMethod: "ean8",
			wantInputs: []string{"9638507", "1234567"},
		},
		{
			name:       "multiple numbers per stdin line",
			args:       []string{"luhn"},
			stdin:      "123 456\n\n789\n",
			wantMethod: "luhn",
			wantInputs: []string{"123", "456", "789"},
		},
		{
			name:       "method from config",
			args:       nil,
			cfg:        &config.Config{DefaultMethod: "isbn10"},
			stdin:      "030640615\n",
			wantMethod: "isbn10",
			wantInputs: []string{"030640615"},
		},
		{
			name:    "no method anywhere",
			args:    nil,
			cfg:     &config.Config{},
			stdin:   "9638507\n",
			wantErr: true,
		},
		{
			name:    "no numbers anywhere",
			args:    []string{"ean8"},
			stdin:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, inputs, err := resolveBatchArgs(tt.args, tt.cfg, strings.NewReader(tt.stdin))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveBatchArgs failed: %v", err)
			}
			if method != tt.wantMethod {
				t.Errorf("method = %q, want %q", method, tt.wantMethod)
			}
			if len(inputs) != len(tt.wantInputs) {
				t.Fatalf("inputs = %v, want %v", inputs, tt.wantInputs)
			}
			for i := range inputs {
				if inputs[i] != tt.wantInputs[i] {
					t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], tt.wantInputs[i])
				}
			}
		})
	}
}

func TestFormatBodyLen(t *testing.T) {
	tests := []struct {
		name     string
		method   primary.MethodInfo
		expected string
	}{
		{name: "fixed length", method: primary.MethodInfo{MinBodyLen: 7, MaxBodyLen: 7}, expected: "7"},
		{name: "unbounded", method: primary.MethodInfo{MinBodyLen: 1, MaxBodyLen: 0}, expected: "1+"},
		{name: "range", method: primary.MethodInfo{MinBodyLen: 7, MaxBodyLen: 12}, expected: "7-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBodyLen(tt.method); got != tt.expected {
				t.Errorf("formatBodyLen = %q, want %q", got, tt.expected)
			}
		})
	}
}
