// Command cardctl проверяет номера карт и пароли, переводит температуру и
// запускает калькулятор из командной строки.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

// errRejected означает, что хотя бы одно из проверенных значений некорректно.
// Подробности уже выведены, поэтому main только устанавливает код выхода.
var errRejected = errors.New("rejected")

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx)
	stop()
	os.Exit(code)
}

func execute(ctx context.Context) int {
	err := newRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitRejected
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUsage
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardctl",
		Short:         "Card number, password and unit checks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCardCmd())
	root.AddCommand(newPasswordCmd())
	root.AddCommand(newTempCmd())
	root.AddCommand(newCalcCmd())
	return root
}
