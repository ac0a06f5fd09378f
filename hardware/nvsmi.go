package hardware

import (
	"bytes"
	"os/exec"
	"strings"
)

const (
	nvsmiBin    = "nvidia-smi"
	queryArg    = "--query-gpu="
	csvNoHeader = "--format=csv,noheader"
	csvNoUnits  = "--format=csv,noheader,nounits"
)

// QueryResult is the outcome of one nvidia-smi invocation. Err is set only
// when the tool could not be started at all (e.g. not installed); a tool that
// ran but failed reports through ExitCode instead.
type QueryResult struct {
	Output   string
	ExitCode int
	Err      error
}

// OK reports whether the query ran and exited zero.
func (r QueryResult) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// FirstLine returns the first line of the trimmed output. Multi-GPU hosts
// emit one line per device; only device 0 is considered.
func (r QueryResult) FirstLine() string {
	out := strings.TrimSpace(r.Output)
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return strings.TrimSpace(out)
}

// Querier runs a single nvidia-smi field query. The concrete implementation
// shells out; tests substitute canned results.
type Querier interface {
	Query(fields string, format string) QueryResult
}

type nvsmiQuerier struct{}

func (nvsmiQuerier) Query(fields string, format string) QueryResult {
	var out bytes.Buffer
	cmd := exec.Command(nvsmiBin, queryArg+fields, format)
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return QueryResult{Output: out.String(), ExitCode: exitErr.ExitCode()}
		}
		return QueryResult{Err: err}
	}
	return QueryResult{Output: out.String()}
}
