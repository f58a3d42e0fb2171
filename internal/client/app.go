package client

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/service"
)

// BuildInfo is stamped into the binary by the linker.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type App struct {
	services    *service.ClientServices
	prompter    PasswordPrompter
	credentials config.ClientCredentials
	build       BuildInfo

	out             io.Writer
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	prompter PasswordPrompter,
	credentials config.ClientCredentials,
	build BuildInfo,
	out io.Writer,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || services.AuthService == nil || services.SecuredEntityService == nil {
		return nil, ErrNoServices
	}
	if prompter == nil {
		return nil, ErrNoPrompter
	}

	return &App{
		services:        services,
		prompter:        prompter,
		credentials:     credentials,
		build:           build,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}, nil
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) usage() {
	a.printf("usage: go-secure-url <command> [flags]\n\ncommands:\n")
	for _, name := range commandOrder {
		a.printf("  %-11s %s\n", name, a.commands()[name].summary)
	}
}

// copyPassword puts password on the clipboard. Headless machines have no
// clipboard, so failures are only reported.
func (a *App) copyPassword(password string) {
	if err := a.copyToClipboard(password); err != nil {
		a.logger.Warn().Err(err).Msg("copy to clipboard failed")
		return
	}
	a.printf("password copied to clipboard\n")
}
