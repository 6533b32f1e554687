package bridge

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/motley/internal/logx"
)

// ParseOptions reads flags from args and environment variables.
func ParseOptions(args []string) (*Options, error) {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return options, nil
}

func Run(args []string) error {
	options, err := ParseOptions(args)
	if err != nil {
		return err
	}
	if err = options.Validate(); err != nil {
		return err
	}
	logx.Configure(options.LogLevel, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	service, err := New(options)
	if err != nil {
		return err
	}
	return service.Serve(ctx)
}
