package model

// ProcessView identifies a process the engine can open.
type ProcessView struct {
	PID  uint32 `json:"pid" yaml:"pid"`
	Name string `json:"name" yaml:"name"`
}

// WriteStatus is the outcome of one address write.
type WriteStatus string

// Write outcomes. WriteFailed means the engine answered but wrote nothing;
// WriteError means the call itself did not complete.
const (
	WriteOK     WriteStatus = "ok"
	WriteFailed WriteStatus = "failed"
	WriteError  WriteStatus = "error"
)

// WriteOutcome reports what happened to one address in a write batch.
type WriteOutcome struct {
	Address      Address     `yaml:"address"`
	Status       WriteStatus `yaml:"status"`
	BytesWritten int         `yaml:"bytes_written"`
	Err          error       `yaml:"-"`
}

// WriteBatchResult holds one outcome per requested address, in request order.
type WriteBatchResult struct {
	Outcomes []WriteOutcome
}

// Succeeded counts the outcomes with WriteOK.
func (r WriteBatchResult) Succeeded() int {
	n := 0

	for _, o := range r.Outcomes {
		if o.Status == WriteOK {
			n++
		}
	}

	return n
}

// Failed returns the outcomes that did not succeed.
func (r WriteBatchResult) Failed() []WriteOutcome {
	var failed []WriteOutcome

	for _, o := range r.Outcomes {
		if o.Status != WriteOK {
			failed = append(failed, o)
		}
	}

	return failed
}
