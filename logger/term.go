package logger

import "os"

var isTerm = func() bool {
	fileInfo, _ := os.Stdout.Stat()
	return fileInfo != nil && fileInfo.Mode()&os.ModeCharDevice != 0
}()

func inTerm() bool {
	return isTerm
}
