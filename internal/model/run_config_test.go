package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       RunConfig
		expectErr string
	}{
		{
			name: "all with files",
			cfg:  RunConfig{Location: "/tmp/db", Mode: ModeAll, DataFiles: []string{"a.nt"}},
		},
		{
			name: "index without files",
			cfg:  RunConfig{Location: "/tmp/db", Mode: ModeIndex},
		},
		{
			name:      "error - missing location",
			cfg:       RunConfig{Mode: ModeIndex},
			expectErr: "No location specified",
		},
		{
			name:      "error - blank location",
			cfg:       RunConfig{Location: "  ", Mode: ModeIndex},
			expectErr: "No location specified",
		},
		{
			name:      "error - data without files",
			cfg:       RunConfig{Location: "/tmp/db", Mode: ModeData},
			expectErr: "No data files",
		},
		{
			name:      "error - all without files",
			cfg:       RunConfig{Location: "/tmp/db", Mode: ModeAll},
			expectErr: "No data files",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
			assert.Equal(t, ExitConfigError, ExitCode(err))
		})
	}
}

func TestRunConfig_CloneDoesNotShareFiles(t *testing.T) {
	orig := RunConfig{Location: "/tmp/db", DataFiles: []string{"a.nt", "b.nt"}}
	clone := orig.Clone()
	clone.DataFiles[0] = "changed.nt"
	assert.Equal(t, "a.nt", orig.DataFiles[0])
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 7, ExitCode(&PhaseFailure{Phase: PhaseData, Code: 7}))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("wrapped: %w", &PhaseFailure{Phase: PhaseIndex, Code: 3})))
	assert.Equal(t, ExitConfigError, ExitCode(&ConfigurationError{Message: "bad"}))
	assert.Equal(t, ExitConfigError, ExitCode(errors.New("anything else")))
}

func TestPhaseFailure_Message(t *testing.T) {
	assert.Equal(t, "Failed during data phase (exit code 2)", (&PhaseFailure{Phase: PhaseData, Code: 2}).Error())
	assert.Equal(t, "Failed during index phase (exit code 9)", (&PhaseFailure{Phase: PhaseIndex, Code: 9}).Error())
}

func TestConfigurationError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ConfigurationError{Message: "Cannot create location", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Cannot create location: permission denied", err.Error())
}
