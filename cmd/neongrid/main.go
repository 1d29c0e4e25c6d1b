// Command neongrid opens a window with the animated neon surface,
// or builds a contact mailto URI with the contact subcommand:
//
//	neongrid [-config neongrid.yaml] [-v] [-stats]
//	neongrid contact -to me@example.com -name Ann -email a@b.com -message Hi
//	neongrid init-config neongrid.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/edwinsyarief/neongrid"
	"github.com/edwinsyarief/neongrid/contact"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "neongrid: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "contact":
			return runContact(args[1:], stdout, stderr)
		case "init-config":
			return runInitConfig(args[1:], stdout)
		}
	}

	fs := flag.NewFlagSet("neongrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	verbose := fs.Bool("v", false, "log lifecycle events to stderr")
	stats := fs.Bool("stats", false, "draw tick and pointer stats")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		neongrid.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := neongrid.DefaultConfig()
	if *configPath != "" {
		loaded, err := neongrid.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	neongrid.Debug().SetStats(*stats)
	return neongrid.Run(cfg)
}

func runContact(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "read the recipient from this YAML config")
	to := fs.String("to", "", "recipient address")
	var form contact.Form
	fs.StringVar(&form.Name, "name", "", "sender name")
	fs.StringVar(&form.Email, "email", "", "sender email")
	fs.StringVar(&form.Message, "message", "", "message body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	recipient := *to
	if recipient == "" && *configPath != "" {
		cfg, err := neongrid.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		recipient = cfg.Contact.Recipient
	}
	if recipient == "" {
		return errors.New("contact: no recipient, pass -to or set contact.recipient in the config")
	}

	_, err := fmt.Fprintln(stdout, contact.MailtoURI(recipient, form))
	return err
}

func runInitConfig(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("init-config: expected exactly one output path")
	}
	if err := neongrid.WriteConfig(args[0], neongrid.DefaultConfig()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "wrote %s\n", args[0])
	return err
}
