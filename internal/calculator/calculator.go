// Package calculator реализует арифметический калькулятор и его текстовое меню.
package calculator

import (
	"errors"
	"strings"
)

// ErrDivisionByZero возвращается при делении на ноль.
var ErrDivisionByZero = errors.New("division by zero")

// Operation описывает бинарную арифметическую операцию.
type Operation struct {
	Name  string
	Title string
	Apply func(a, b float64) (float64, error)
}

// Add возвращает сумму a и b.
func Add(a, b float64) float64 { return a + b }

// Subtract возвращает разность a и b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply возвращает произведение a и b.
func Multiply(a, b float64) float64 { return a * b }

// Divide возвращает частное a и b либо ErrDivisionByZero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func infallible(fn func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		return fn(a, b), nil
	}
}

// Operations содержит операции в порядке пунктов меню.
var Operations = []Operation{
	{Name: "add", Title: "Add", Apply: infallible(Add)},
	{Name: "subtract", Title: "Subtract", Apply: infallible(Subtract)},
	{Name: "multiply", Title: "Multiply", Apply: infallible(Multiply)},
	{Name: "divide", Title: "Divide", Apply: Divide},
}

// Lookup находит операцию по номеру пункта меню ("1".."4") или по имени.
func Lookup(choice string) (Operation, bool) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	for i, op := range Operations {
		if choice == op.Name || choice == menuKey(i) {
			return op, true
		}
	}
	return Operation{}, false
}

func menuKey(i int) string {
	return string(rune('1' + i))
}
