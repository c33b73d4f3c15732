// Package convert содержит функции перевода температуры между шкалами.
package convert

import (
	"errors"
	"strings"
)

// Scale обозначает температурную шкалу.
type Scale string

const (
	Celsius    Scale = "C"
	Fahrenheit Scale = "F"
)

// ErrUnknownScale возвращается для неизвестного обозначения шкалы.
var ErrUnknownScale = errors.New("unknown temperature scale")

// CelsiusToFahrenheit переводит градусы Цельсия в градусы Фаренгейта.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius переводит градусы Фаренгейта в градусы Цельсия.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ParseScale разбирает обозначение шкалы без учёта регистра.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return "", ErrUnknownScale
}

// Convert возвращает значение температуры в обеих шкалах.
func Convert(value float64, from Scale) (celsius, fahrenheit float64, err error) {
	switch from {
	case Celsius:
		return value, CelsiusToFahrenheit(value), nil
	case Fahrenheit:
		return FahrenheitToCelsius(value), value, nil
	}
	return 0, 0, ErrUnknownScale
}
