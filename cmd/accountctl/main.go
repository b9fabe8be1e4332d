// Command accountctl is a small operator CLI for the accountgate server.
//
// Usage:
//
//	accountctl [-a address] [-token token] <command> [arguments]
//
// Commands:
//
//	login  -login <login> -secret <secret>
//	create <login> [-name <name>] [-caps <cap,cap>] [-copy]
//	get    <login>
//	list   [-capability <cap>] [-q <prefix>]
//	ping
//
// The login command prints the bearer token to stdout; pass it back via
// -token (or the ACCOUNTGATE_TOKEN environment variable) for the
// authenticated commands. With -copy the generated secret is placed on the
// system clipboard instead of being printed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"accountgate/internal/adapter"
	"accountgate/internal/logger"
	"accountgate/models"

	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	address := flag.String("a", "localhost:8080", "server address")
	token := flag.String("token", os.Getenv("ACCOUNTGATE_TOKEN"), "bearer token for authenticated commands")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: accountctl [flags] <login|create|get|list|ping> [arguments]")
		os.Exit(2)
	}

	log := logger.Nop()
	serverAdapter, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		fatal(err)
	}
	serverAdapter.SetToken(*token)

	ctx := context.Background()

	switch command := flag.Arg(0); command {
	case "login":
		err = runLogin(ctx, serverAdapter, flag.Args()[1:])
	case "create":
		err = runCreate(ctx, serverAdapter, flag.Args()[1:])
	case "get":
		err = runGet(ctx, serverAdapter, flag.Args()[1:])
	case "list":
		err = runList(ctx, serverAdapter, flag.Args()[1:])
	case "ping":
		err = serverAdapter.Ping(ctx)
		if err == nil {
			fmt.Println("OK")
		}
	default:
		err = fmt.Errorf("unknown command %q", command)
	}

	if err != nil {
		fatal(err)
	}
}

func runLogin(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	login := fs.String("login", "", "account login")
	secret := fs.String("secret", "", "account secret")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := serverAdapter.Login(ctx, models.Credentials{Login: *login, Secret: *secret})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func runCreate(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "display name of the new account")
	caps := fs.String("caps", "", "comma-separated capabilities to grant")
	copySecret := fs.Bool("copy", false, "place the generated secret on the clipboard instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: accountctl create <login> [-name <name>] [-caps <cap,cap>] [-copy]")
	}

	provisioned, err := serverAdapter.ProvisionAccount(ctx, fs.Arg(0), models.ProvisionRequest{
		Name:         *name,
		Capabilities: models.ParseCapabilitySet(*caps),
	})
	if err != nil {
		return err
	}

	fmt.Printf("account_id: %s\nlogin: %s\n", provisioned.AccountID, provisioned.Login)

	if *copySecret {
		if err := clipboard.WriteAll(provisioned.Secret); err != nil {
			return fmt.Errorf("copy secret to clipboard: %w", err)
		}
		fmt.Println("secret copied to clipboard")
		return nil
	}

	fmt.Printf("secret: %s\n", provisioned.Secret)
	return nil
}

func runGet(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: accountctl get <login>")
	}

	view, err := serverAdapter.GetAccount(ctx, args[0])
	if err != nil {
		return err
	}

	printAccount(view)
	return nil
}

func runList(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	capability := fs.String("capability", "", "only accounts granted this capability")
	prefix := fs.String("q", "", "only logins starting with this prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	accounts, err := serverAdapter.ListAccounts(ctx, models.AccountFilter{
		Capability:  models.Capability(*capability),
		LoginPrefix: *prefix,
	})
	if err != nil {
		return err
	}

	for _, view := range accounts.Accounts {
		printAccount(view)
	}
	fmt.Printf("total: %d\n", accounts.Length)
	return nil
}

func printAccount(view models.AccountView) {
	fmt.Printf("%s\t%s\t%s\t[%s]\t%s\n",
		view.PublicID,
		view.Login,
		view.Name,
		view.Capabilities.String(),
		view.CreatedAt.Format(time.RFC3339),
	)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "accountctl: %v\n", err)
	os.Exit(1)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
