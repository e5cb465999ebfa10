package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/viant/authsession"
	"github.com/viant/authsession/auth"
)

func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	logger, err := newLogger(options.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	options.Logger = logger

	client, err := authsession.NewClient(ctx, &options.ClientOptions)
	if err != nil {
		return err
	}
	store := client.Store()

	switch parser.Active.Name {
	case "signin":
		cmd := options.SignIn
		if err = client.SignIn(ctx, &auth.SignInRequest{Username: cmd.Username, Password: cmd.Password}); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "signed in as %s (%s)\n", store.CurrentUsername(), store.UserRole())
	case "signup":
		cmd := options.SignUp
		if err = client.SignUp(ctx, &auth.SignUpRequest{Username: cmd.Username, Password: cmd.Password, Role: cmd.Role}); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "signed up %s\n", cmd.Username)
	case "signout":
		if err = client.SignOut(ctx); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, "signed out")
	case "whoami":
		_, err = fmt.Fprintf(w, "user: %s\nauthenticated: %v\n", store.CurrentUsername(), store.IsAuthenticated())
	case "call":
		cmd := options.Call
		var body interface{}
		if cmd.Data != "" {
			body = []byte(cmd.Data)
		}
		resp, callErr := client.Dispatcher.Do(ctx, strings.ToUpper(cmd.Method), cmd.Args.Path, body)
		if callErr != nil {
			return callErr
		}
		_, err = fmt.Fprintln(w, string(resp.Body))
	default:
		err = fmt.Errorf("unsupported command: %v", parser.Active.Name)
	}
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
