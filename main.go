package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"consolidator/cmd"
	"consolidator/pkg/logging"
	"consolidator/pkg/version"
)

func main() {
	logger, err := logging.Setup(logging.Options{
		Console:    logging.IsTerminal(os.Stderr),
		AppName:    "consolidator",
		AppVersion: version.Get().Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		logger.Fatal("consolidator execution failed", zap.Error(err))
	}

	// Syncing a pipe or /dev/null fails with EINVAL on some platforms.
	if logging.IsTerminal(os.Stderr) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
