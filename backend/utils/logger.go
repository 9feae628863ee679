package utils

import (
	"log"
	"os"
)

// InitLogger builds the process-wide logger. Output can be redirected
// for tests.
func InitLogger(output ...*os.File) *log.Logger {
	out := os.Stdout
	if len(output) > 0 && output[0] != nil {
		out = output[0]
	}
	return log.New(out, "[Didactypo] ", log.LstdFlags|log.LUTC)
}
