package cli

import (
	"io"
	"testing"
)

// The check command fails only when no input validated; a mixed batch
// with at least one valid number exits zero.
func TestCheckCmd_ExitPolicy(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "all valid",
			args:    []string{"ean8", "96385074", "12345670"},
			wantErr: false,
		},
		{
			name:    "mixed batch succeeds",
			args:    []string{"ean8", "96385074", "12345678"},
			wantErr: false,
		},
		{
			name:    "all invalid",
			args:    []string{"ean8", "12345678", "96385070"},
			wantErr: true,
		},
		{
			name:    "single invalid",
			args:    []string{"ean8", "96385070"},
			wantErr: true,
		},
		{
			name:    "unknown method",
			args:    []string{"no-such-method", "96385074"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := CheckCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(append(tt.args, "--quiet"))

			err := cmd.Execute()
			if tt.wantErr && err == nil {
				t.Errorf("check %v exited zero, want failure", tt.args)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("check %v failed: %v", tt.args, err)
			}
		})
	}
}
