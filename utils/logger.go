package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const logsDir = "logs"

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

func InitLogger() error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	errorLogFile, err := openLogFile("errors.log")
	if err != nil {
		return err
	}
	panicLogFile, err := openLogFile("panics.log")
	if err != nil {
		return err
	}

	ErrorLogger = log.New(errorLogFile, "", 0)
	PanicLogger = log.New(panicLogFile, "", 0)
	return nil
}

func openLogFile(name string) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", name, err)
	}
	return f, nil
}

func LogError(err error, context string) {
	if ErrorLogger == nil {
		return
	}
	file, line := callerInfo(2)
	ErrorLogger.Printf("[%s] ERROR in %s:%d - %s: %v", time.Now().Format("2006-01-02 15:04:05"), file, line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		return
	}
	file, line := callerInfo(3)
	PanicLogger.Printf("[%s] PANIC in %s:%d - %s: %v", time.Now().Format("2006-01-02 15:04:05"), file, line, context, recovered)
}

func callerInfo(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
