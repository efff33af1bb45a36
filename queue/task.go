package queue

import (
	"encoding/hex"
	"fmt"

	"github.com/grovekit/ctrkey/ctr"
)

// Task represents a ctr key whose statistics
// table has to be computed.
type Task struct {
	// The ctr key to compute a statistics table for.
	Key ctr.Ctr

	id string
}

// NewTask returns a task for the given ctr key, or an error if the key
// cannot be serialized into a task id.
func NewTask(key ctr.Ctr) (*Task, error) {
	data, err := key.Bytes()
	if err != nil {
		return nil, fmt.Errorf("building task id: %v", err)
	}
	return &Task{Key: key, id: hex.EncodeToString(data)}, nil
}

// ID returns a string that identifies the task: the hex form of its
// key's canonical binary record. Tasks for equal keys share their ID.
func (t *Task) ID() string {
	return t.id
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %s}", t.id)
}
