package testutil

import (
	"io"

	"github.com/danimarcos10/feedback-platform/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(0, io.Discard)
}
