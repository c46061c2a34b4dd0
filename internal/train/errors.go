package train

import "errors"

// ErrNoTask is returned by Runner.Run when given a nil task.
var ErrNoTask = errors.New("train: no task")
