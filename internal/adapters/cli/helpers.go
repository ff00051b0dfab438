package cli

import (
	"context"
	"io"
	"os"

	"github.com/andrescamacho/mediator-go/internal/adapters/console"
	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/application/demo/queries"
	"github.com/andrescamacho/mediator-go/internal/application/logging"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

// newDispatcher wires a fresh session over the given output writer and a
// request dispatcher with all demo handlers registered.
func newDispatcher(out io.Writer) (mediator.Mediator, *demo.Session, error) {
	sink := console.NewWriterSink(out)
	session := demo.NewSession(sink)

	med := mediator.NewMediator()
	med.RegisterMiddleware(logging.Middleware())

	triggerHandler := commands.NewTriggerActionHandler(session)
	if err := mediator.RegisterHandler[*commands.TriggerActionCommand](med, triggerHandler); err != nil {
		return nil, nil, err
	}

	runHandler := commands.NewRunScriptHandler(med, session)
	if err := mediator.RegisterHandler[*commands.RunScriptCommand](med, runHandler); err != nil {
		return nil, nil, err
	}

	describeHandler := queries.NewDescribeGraphHandler(session)
	if err := mediator.RegisterHandler[*queries.DescribeGraphQuery](med, describeHandler); err != nil {
		return nil, nil, err
	}

	return med, session, nil
}

// newLogger builds the dispatch logger from the logging configuration:
// logging.output selects the writer, logging.level gates entries, and
// the --verbose flag forces the debug level.
func newLogger(cfg *config.Config, stdout, stderr io.Writer) logging.ActionLogger {
	out := stderr
	if cfg.Logging.Output == "stdout" {
		out = stdout
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	return logging.NewFilteredLogger(logging.NewWriterLogger(out), level)
}

// commandContext returns the context requests are dispatched with. It
// always carries a logger; the configured level decides what is emitted.
func commandContext(cfg *config.Config) context.Context {
	return logging.WithLogger(context.Background(), newLogger(cfg, os.Stdout, os.Stderr))
}
