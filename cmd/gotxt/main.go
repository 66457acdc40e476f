package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/gotxt/internal/cli"
	"github.com/temirov/gotxt/internal/utils"
)

// main is the entry point for the gotxt command.
func main() {
	logLevel := zap.NewAtomicLevelAt(zap.ErrorLevel)
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(logLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() { _ = loggerInstance.Sync() }()
	if applicationExecutionError := cli.Execute(loggerInstance, logLevel); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
