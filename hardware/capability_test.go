package hardware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier serves canned nvidia-smi results and counts invocations.
type fakeQuerier struct {
	combined QueryResult
	nameOnly QueryResult
	calls    []string
}

func (f *fakeQuerier) Query(fields string, format string) QueryResult {
	f.calls = append(f.calls, fields)
	if fields == "name" {
		return f.nameOnly
	}
	return f.combined
}

func TestResolveRTX3050Shortcut(t *testing.T) {
	smi := &fakeQuerier{
		combined: QueryResult{Output: "NVIDIA GeForce RTX 3050, 8.6\n"},
		nameOnly: QueryResult{Err: errors.New("should not be called")},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, "8.6", r.Resolve())
	require.Equal(t, []string{"name,compute_cap"}, smi.calls, "3050 shortcut must skip the name-only query")
}

func TestResolveFallsBackToNameQuery(t *testing.T) {
	smi := &fakeQuerier{
		combined: QueryResult{Output: "NVIDIA GeForce RTX 4090, 8.9\n"},
		nameOnly: QueryResult{Output: "NVIDIA GeForce RTX 4090\n"},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, "8.9", r.Resolve())
	assert.Equal(t, []string{"name,compute_cap", "name"}, smi.calls)
}

func TestResolveNameRules(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"NVIDIA GeForce RTX 3050", "8.6"},
		{"NVIDIA GeForce RTX 3060 Ti", "8.6"},
		{"NVIDIA GeForce RTX 3070", "8.6"},
		{"NVIDIA GeForce RTX 3080 Ti", "8.6"},
		{"NVIDIA GeForce RTX 3090", "8.6"},
		{"NVIDIA GeForce RTX 4060", "8.9"},
		{"NVIDIA GeForce RTX 4070 Ti", "8.9"},
		{"NVIDIA GeForce RTX 4080", "8.9"},
		{"NVIDIA GeForce RTX 4090", "8.9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			smi := &fakeQuerier{
				combined: QueryResult{ExitCode: 1},
				nameOnly: QueryResult{Output: tc.name + "\n"},
			}
			r := &Resolver{smi: smi}
			assert.Equal(t, tc.want, r.Resolve())
		})
	}
}

func TestResolveUnknownNameFallsToDefault(t *testing.T) {
	// TITAN RTX is neither an RTX 30 nor RTX 40 card.
	smi := &fakeQuerier{
		combined: QueryResult{Output: "NVIDIA TITAN RTX, 7.5\n"},
		nameOnly: QueryResult{Output: "NVIDIA TITAN RTX\n"},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, DefaultComputeCapability, r.Resolve())
}

func TestResolveFamilyGate(t *testing.T) {
	// A name carrying a matching model number but no RTX 30/40 family
	// marker must not match the rule table.
	smi := &fakeQuerier{
		combined: QueryResult{ExitCode: 1},
		nameOnly: QueryResult{Output: "NVIDIA A4090X Accelerator\n"},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, DefaultComputeCapability, r.Resolve())
}

func TestResolveBothQueriesFail(t *testing.T) {
	smi := &fakeQuerier{
		combined: QueryResult{ExitCode: 6},
		nameOnly: QueryResult{ExitCode: 6},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, DefaultComputeCapability, r.Resolve())
	assert.Equal(t, []string{"name,compute_cap", "name"}, smi.calls)
}

func TestResolveToolMissing(t *testing.T) {
	smi := &fakeQuerier{
		combined: QueryResult{Err: errors.New(`exec: "nvidia-smi": executable file not found in $PATH`)},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, DefaultComputeCapability, r.Resolve())
	assert.Equal(t, []string{"name,compute_cap"}, smi.calls, "a missing tool short-circuits to the default")
}

func TestResolveOnlyFirstLineConsidered(t *testing.T) {
	// Multi-GPU host: device 0 decides.
	smi := &fakeQuerier{
		combined: QueryResult{Output: "NVIDIA GeForce RTX 4090, 8.9\nNVIDIA GeForce RTX 3050, 8.6\n"},
		nameOnly: QueryResult{Output: "NVIDIA GeForce RTX 4090\nNVIDIA GeForce RTX 3050\n"},
	}
	r := &Resolver{smi: smi}

	assert.Equal(t, "8.9", r.Resolve())
}

func TestGPUModelName(t *testing.T) {
	smi := &fakeQuerier{
		nameOnly: QueryResult{Output: "  NVIDIA GeForce RTX 3050  \n"},
	}
	r := &Resolver{smi: smi}
	assert.Equal(t, "NVIDIA GeForce RTX 3050", r.GPUModelName())

	smi = &fakeQuerier{nameOnly: QueryResult{ExitCode: 1}}
	r = &Resolver{smi: smi}
	assert.Equal(t, "unknown", r.GPUModelName())
}
