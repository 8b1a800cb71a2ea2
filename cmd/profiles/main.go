package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"caesar/internal/config"
	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/rec"
	"caesar/internal/rot"
)

const usage = `Usage:
  profiles <config> list
  profiles <config> set <name> <low> <high> <shift>
  profiles <config> rm <name>`

var errUsage = errors.New("invalid arguments")

func parseChar(s string) (rune, error) {
	var c rot.Char
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return rune(c), nil
}

func set(args []string) error {
	if len(args) != 4 {
		return errUsage
	}

	low, err := parseChar(args[1])
	if err != nil {
		return fmt.Errorf("low: %w", err)
	}
	high, err := parseChar(args[2])
	if err != nil {
		return fmt.Errorf("high: %w", err)
	}
	shift, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("shift must be a whole number: %w", err)
	}

	return db.SetProfile(args[0], db.Profile{Low: rot.Char(low), High: rot.Char(high), Shift: shift})
}

func run(ctx context.Context, out io.Writer, c config.Config, args []string) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	if len(args) == 0 {
		return errUsage
	}

	logger.Info("opening db")
	db.Open(c.DB)
	defer ctxlog.Close(ctx, "db", db.Closer())

	switch cmd, args := args[0], args[1:]; cmd {
	case "list":
		if len(args) != 0 {
			return errUsage
		}
		for name, p := range db.All() {
			fmt.Fprintf(out, "%s\t%q\t%q\t%d\t%s\n", name, rune(p.Low), rune(p.High), p.Shift, p.Created.Format("2006-01-02 15:04:05"))
		}
		return nil

	case "set":
		if err := set(args); err != nil {
			return err
		}
		logger.Info("profile stored", "profile", args[0])
		return nil

	case "rm":
		if len(args) != 1 {
			return errUsage
		}
		existed, err := db.DeleteProfile(args[0])
		if err != nil {
			return err
		}
		if !existed {
			return fmt.Errorf("unknown profile %q", args[0])
		}
		logger.Info("profile deleted", "profile", args[0])
		return nil

	default:
		return errUsage
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) <= 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	c, err := config.Load(ctx, os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx = ctxlog.Setup(ctx, "profiles", c.LogDir)

	logger := ctxlog.Get(ctx)

	err = run(ctx, os.Stdout, c, os.Args[2:])
	if errors.Is(err, errUsage) {
		fmt.Println(usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("profiles failed", "error", err)
		os.Exit(1)
	}
}
