package client

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/tui"
	"github.com/MKhiriev/go-secure-url/models"
)

type command struct {
	summary string
	run     func(ctx context.Context, args []string) error
}

var commandOrder = []string{
	"register", "login", "create", "list", "get", "regenerate", "access", "stats", "version",
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"register":   {"create an account", a.register},
		"login":      {"check credentials", a.login},
		"create":     {"secure a link (-url) or a file (-file)", a.create},
		"list":       {"list your secured entities", a.list},
		"get":        {"show a secured entity and its password", a.get},
		"regenerate": {"issue a new password for a secured entity", a.regenerate},
		"access":     {"open a secured entity with its password", a.access},
		"stats":      {"show daily access counters", a.stats},
		"version":    {"show client and server versions", a.version},
	}
}

// credentialFlags are shared by every subcommand that acts as the owner.
type credentialFlags struct {
	login    *string
	password *string
}

func (a *App) newFlagSet(name string) (*flag.FlagSet, credentialFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs, credentialFlags{
		login:    fs.String("login", "", "account login"),
		password: fs.String("password", "", "account password (prompted when empty)"),
	}
}

// resolveCredentials takes login and password from flags, configuration and,
// for the password, an interactive prompt.
func (a *App) resolveCredentials(cf credentialFlags) (models.User, error) {
	login := strings.TrimSpace(*cf.login)
	if login == "" {
		login = a.credentials.Login
	}
	if login == "" {
		return models.User{}, ErrMissingLogin
	}

	password := *cf.password
	if password == "" {
		password = a.credentials.Password
	}
	if password == "" {
		var err error
		if password, err = a.prompter.PromptPassword("Password"); err != nil {
			return models.User{}, err
		}
	}

	return models.User{Login: login, Password: password}, nil
}

func (a *App) authenticate(ctx context.Context, cf credentialFlags) error {
	user, err := a.resolveCredentials(cf)
	if err != nil {
		return err
	}

	_, err = a.services.AuthService.Login(ctx, user)
	return err
}

// idArg returns the single positional argument.
func idArg(fs *flag.FlagSet) (string, error) {
	id := strings.TrimSpace(fs.Arg(0))
	if id == "" {
		return "", fmt.Errorf("%w: secured entity id", ErrMissingArgument)
	}
	return id, nil
}

// ── accounts ────────────────────────────────────────────────────────────────

func (a *App) register(ctx context.Context, args []string) error {
	fs, cf := a.newFlagSet("register")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.resolveCredentials(cf)
	if err != nil {
		return err
	}

	if _, err = a.services.AuthService.Register(ctx, user); err != nil {
		return err
	}

	a.printf("registered as %s\n", user.Login)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs, cf := a.newFlagSet("login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.authenticate(ctx, cf); err != nil {
		return err
	}

	a.printf("credentials are valid\n")
	return nil
}

// ── owner commands ──────────────────────────────────────────────────────────

func (a *App) create(ctx context.Context, args []string) error {
	fs, cf := a.newFlagSet("create")
	link := fs.String("url", "", "link to secure")
	path := fs.String("file", "", "file to upload")
	noCopy := fs.Bool("no-copy", false, "do not copy the password to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *link != "" && *path != "" {
		return service.ErrBothURLAndFileProvided
	}
	if *link == "" && *path == "" {
		return service.ErrNoURLOrFileProvided
	}

	if err := a.authenticate(ctx, cf); err != nil {
		return err
	}

	var (
		entity models.SecuredEntityResponse
		err    error
	)
	if *path != "" {
		entity, err = a.services.SecuredEntityService.CreateFile(ctx, *path)
	} else {
		entity, err = a.services.SecuredEntityService.CreateLink(ctx, *link)
	}
	if err != nil {
		return err
	}

	a.printf("%s", tui.RenderEntity(entity))
	if !*noCopy {
		a.copyPassword(entity.Password)
	}
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	fs, cf := a.newFlagSet("list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.authenticate(ctx, cf); err != nil {
		return err
	}

	entities, err := a.services.SecuredEntityService.List(ctx)
	if err != nil {
		return err
	}

	a.printf("%s", tui.RenderEntities(entities))
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	return a.showEntity(ctx, "get", args, a.services.SecuredEntityService.Get)
}

func (a *App) regenerate(ctx context.Context, args []string) error {
	return a.showEntity(ctx, "regenerate", args, a.services.SecuredEntityService.RegeneratePassword)
}

func (a *App) showEntity(
	ctx context.Context,
	name string,
	args []string,
	fetch func(ctx context.Context, id string) (models.SecuredEntityResponse, error),
) error {
	fs, cf := a.newFlagSet(name)
	noCopy := fs.Bool("no-copy", false, "do not copy the password to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := idArg(fs)
	if err != nil {
		return err
	}

	if err = a.authenticate(ctx, cf); err != nil {
		return err
	}

	entity, err := fetch(ctx, id)
	if err != nil {
		return err
	}

	a.printf("%s", tui.RenderEntity(entity))
	if !*noCopy {
		a.copyPassword(entity.Password)
	}
	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	fs, cf := a.newFlagSet("stats")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.authenticate(ctx, cf); err != nil {
		return err
	}

	stats, err := a.services.SecuredEntityService.Stats(ctx)
	if err != nil {
		return err
	}

	a.printf("%s", tui.RenderStats(stats))
	return nil
}

// ── public commands ─────────────────────────────────────────────────────────

func (a *App) access(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("access", flag.ContinueOnError)
	fs.SetOutput(a.out)
	password := fs.String("password", "", "access password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := idArg(fs)
	if err != nil {
		return err
	}

	if *password == "" {
		if *password, err = a.prompter.PromptPassword("Access password"); err != nil {
			return err
		}
	}

	grant, err := a.services.SecuredEntityService.Access(ctx, id, *password)
	if err != nil {
		return err
	}

	a.printf("%s\n", grant.Target)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	a.printf("client: %s (built %s, commit %s)\n", a.build.Version, a.build.Date, a.build.Commit)

	serverVersion, err := a.services.SecuredEntityService.Version(ctx)
	if err != nil {
		a.printf("server: %s\n", tui.HumanizeError(err))
		return nil
	}

	a.printf("server: %s\n", serverVersion)
	return nil
}
