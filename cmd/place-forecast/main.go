package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"place-forecast/config"
	"place-forecast/internal/geocode"
	"place-forecast/internal/mcpclient"
	"place-forecast/internal/services/forecast"
	"place-forecast/pkg/logger"
	"place-forecast/pkg/observe"
)

// Exit codes, one per failure category. 0 is success, 1 is any
// uncategorized failure.
const (
	exitInvalidInput     = 2
	exitConnection       = 3
	exitToolNotFound     = 4
	exitRemoteInvocation = 5
	exitTransport        = 6
	exitCoordinateParse  = 7
)

func main() {
	cnf := config.NewConfig()

	// Logs go to stderr so the forecast text on stdout stays clean.
	writers := []io.Writer{os.Stderr}
	if cnf.SentryDSN != "" {
		hook := observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.IsDevelopment(), cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, writers...)

	root := newRootCmd(cnf, l)
	err := root.Execute()

	_ = l.Stop()
	if cnf.SentryDSN != "" {
		observe.Flush()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var invalidInput *forecast.InvalidInputError
	var connErr *mcpclient.ConnectionError
	var toolErr *mcpclient.ToolNotFoundError
	var remoteErr *mcpclient.RemoteInvocationError
	var transportErr *mcpclient.TransportError
	var parseErr *geocode.ParseError

	switch {
	case errors.As(err, &invalidInput):
		return exitInvalidInput
	case errors.As(err, &connErr):
		return exitConnection
	case errors.As(err, &toolErr):
		return exitToolNotFound
	case errors.As(err, &remoteErr):
		return exitRemoteInvocation
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &parseErr):
		return exitCoordinateParse
	}

	return 1
}
