package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/expensetracker/infra/initializer"
	"github.com/amirasaad/expensetracker/pkg/app"
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  reconcile --email <email> [--asset <id>]   recompute asset balances from transactions`

var (
	okColor    = color.New(color.FgGreen)
	fixedColor = color.New(color.FgYellow, color.Bold)
	errColor   = color.New(color.FgRed)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "reconcile":
		err = runReconcile(context.Background(), os.Args[2:])
	default:
		fmt.Println(usage)
		os.Exit(2)
	}
	if err != nil {
		_, _ = errColor.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runReconcile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reconcile", flag.ContinueOnError)
	email := fs.String("email", "", "email of the account owner")
	assetID := fs.String("asset", "", "reconcile only this asset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}

	password, err := readPassword(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()

	return reconcile(ctx, app.New(deps), os.Stdout, *email, password, *assetID)
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise, so the command can be scripted.
func readPassword(in *os.File, out io.Writer) (string, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		_, _ = fmt.Fprint(out, "Password: ")
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func reconcile(ctx context.Context, a *app.App, out io.Writer, email, password, assetID string) error {
	u, err := a.AuthService.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	var assets []*dto.AssetRead
	if assetID != "" {
		id, err := uuid.Parse(assetID)
		if err != nil {
			return fmt.Errorf("invalid asset id %q: %w", assetID, err)
		}
		one, err := a.AssetService.GetAsset(ctx, u.ID, id)
		if err != nil {
			return err
		}
		assets = append(assets, one)
	} else if assets, err = a.AssetService.ListAssets(ctx, u.ID); err != nil {
		return err
	}

	fixed := 0
	for _, as := range assets {
		res, err := a.TransactionService.ReconcileAsset(ctx, u.ID, as.ID)
		if err != nil {
			return fmt.Errorf("asset %s: %w", as.ID, err)
		}
		if res.Changed() {
			fixed++
			_, _ = fixedColor.Fprintf(out, "corrected %-20s %s -> %s\n", as.Name, res.Previous.StringFixed(2), res.Current.StringFixed(2))
			continue
		}
		_, _ = okColor.Fprintf(out, "ok        %-20s %s\n", as.Name, res.Current.StringFixed(2))
	}
	_, _ = fmt.Fprintf(out, "%d asset(s) checked, %d corrected\n", len(assets), fixed)
	return nil
}
