package cmds

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	// returned after usage is printed, callers should stop and exit cleanly
	ErrHelp = errors.New("help requested")
)
