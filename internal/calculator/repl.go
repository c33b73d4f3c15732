package calculator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errQuit сигнализирует о штатном завершении ввода.
var errQuit = errors.New("quit")

// REPL выполняет цикл меню калькулятора поверх произвольных потоков ввода и вывода.
type REPL struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewREPL создаёт цикл меню, читающий из in и пишущий в out.
func NewREPL(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run показывает меню и выполняет выбранные операции, пока пользователь не
// введёт "q" или не закончится ввод.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printMenu()

		choice, err := r.prompt("Choose an operation: ")
		if err != nil {
			return ignoreQuit(err)
		}

		if strings.EqualFold(choice, "q") {
			return nil
		}

		op, ok := Lookup(choice)
		if !ok {
			fmt.Fprintln(r.out, "Invalid input")
			continue
		}

		a, b, err := r.readOperands()
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}

		result, err := op.Apply(a, b)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(r.out, "Result: %s\n", strconv.FormatFloat(result, 'g', -1, 64))
	}
}

func (r *REPL) printMenu() {
	for i, op := range Operations {
		fmt.Fprintf(r.out, "%s. %s\n", menuKey(i), op.Title)
	}
}

func (r *REPL) prompt(label string) (string, error) {
	fmt.Fprint(r.out, label)

	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errQuit
	}

	return strings.TrimSpace(r.in.Text()), nil
}

func (r *REPL) readOperands() (float64, float64, error) {
	a, err := r.promptNumber("Enter the first number: ")
	if err != nil {
		return 0, 0, err
	}
	b, err := r.promptNumber("Enter the second number: ")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (r *REPL) promptNumber(label string) (float64, error) {
	line, err := r.prompt(label)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}

	return v, nil
}

func ignoreQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
