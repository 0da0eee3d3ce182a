// Command c2w-send sends a single message through Corp2World and, for dialog
// messages, waits for user responses.
//
//	c2w-send [-wait 600s] [-dev DIR] [-v] <topic> <text> [args...]
//
// Credentials come from C2W_CLIENT_TOKEN and C2W_CLIENT_KEY (a .env file in
// the working directory is read too). With -dev the message is written to DIR
// instead of being sent.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	c2w "github.com/corp2world/c2w-go"
	"github.com/corp2world/c2w-go/core/config"
	"github.com/corp2world/c2w-go/core/logger"
	"github.com/corp2world/c2w-go/integration/transport/devfs"
	"github.com/corp2world/c2w-go/integration/transport/rest"
)

const defaultWait = 600 * time.Second

var errUsage = errors.New("topic and text are required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("c2w-send", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		wait    = fs.Duration("wait", defaultWait, "how long to wait for responses to a dialog message")
		devDir  = fs.String("dev", "", "write the message to this directory instead of sending it")
		verbose = fs.Bool("v", false, "log transport activity to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: c2w-send [flags] <topic> <text> [channelTypeId=r1,r2 | p_name=value | test | d_option]...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return errUsage
	}

	log := logger.Discard()
	if *verbose {
		log = logger.New(logger.WithOutput(stderr), logger.WithLevel(slog.LevelDebug), logger.WithTextFormatter())
	}

	transport, err := newTransport(*devDir, log)
	if err != nil {
		return err
	}

	var cfg c2w.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	client, err := c2w.NewFromConfig(cfg, transport, c2w.WithLogger(log))
	if err != nil {
		return err
	}

	msg, warnings := buildMessage(fs.Arg(0), fs.Arg(1), fs.Args()[2:])
	for _, w := range warnings {
		fmt.Fprintln(stderr, "warning:", w)
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = client.Stop(stopCtx)
	}()

	fmt.Fprintf(stdout, "Sending message, topic: %s, text: %s\n", msg.Topic, msg.Text)
	res, err := client.Send(ctx, msg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Message sent with result: %s\n", res.Status)
	fmt.Fprintf(stdout, "Response: %v\n", res.Response)
	id, idErr := res.MessageID()
	if idErr == nil {
		fmt.Fprintf(stdout, "Message ID: %d\n", id)
	}

	if !res.OK() {
		return fmt.Errorf("service returned %s: %v", res.Status, res.Response)
	}
	if !msg.IsDialog() {
		return nil
	}
	if idErr != nil {
		return idErr
	}

	fmt.Fprintln(stdout, "Waiting for response...")
	responses, err := client.WaitForResponse(ctx, id, *wait)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		fmt.Fprintln(stdout, "No response, aborting.")
		return nil
	}
	for _, r := range responses {
		fmt.Fprintf(stdout, "Response: %s from %s at %s\n",
			r.RespondedOption, r.UserID, r.RespondedAt().Format(time.RFC3339))
	}
	return nil
}

func newTransport(devDir string, log *slog.Logger) (c2w.Transport, error) {
	if devDir != "" {
		return devfs.New(devDir, devfs.WithLogger(log)), nil
	}

	var cfg rest.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return rest.New(cfg, rest.WithLogger(log))
}
