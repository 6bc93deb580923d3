package logs

import (
	"io"
	"os"
	"sync"

	"github.com/reusee/toks/cmds"
)

type Writer io.Writer

var logFileFlag = cmds.Var[string]("log-file", "append logs to a file instead of stderr")

func (Module) Writer() Writer {
	if *logFileFlag == "" {
		return os.Stderr
	}
	return appendFile(*logFileFlag)
}

// the file is opened on first write
func appendFile(path string) Writer {
	getFile := sync.OnceValues(func() (*os.File, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	})
	return writerFunc(func(p []byte) (int, error) {
		f, err := getFile()
		if err != nil {
			return 0, err
		}
		return f.Write(p)
	})
}

type writerFunc func([]byte) (int, error)

func (w writerFunc) Write(p []byte) (int, error) {
	return w(p)
}
