package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"caesar/internal/rot"
	"caesar/internal/rotate"
)

var (
	errUsage = errors.New("usage: encode <shift> <text>...")
	errShift = errors.New("shift must be a whole number")
)

// run encodes every text after the shift with the printable alphabet,
// one per line.
func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}

	shift, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", errShift, args[0])
	}

	c, err := rotate.ForAlphabet(rot.Printable, shift)
	if err != nil {
		return err
	}

	texts, err := rotate.All(ctx, args[1:], c.EncodeString, runtime.GOMAXPROCS(0))
	if err != nil {
		return err
	}

	for _, s := range texts {
		fmt.Fprintln(out, s)
	}
	return nil
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		fmt.Println("Usage: encode <shift> <text>...")
		os.Exit(2)
	case errors.Is(err, errShift):
		fmt.Println("Shift must be a whole number.")
		os.Exit(1)
	case err != nil:
		fmt.Println("Encode error:")
		fmt.Println(err)
		os.Exit(1)
	}
}
