// Package validation содержит функции валидации входных данных.
package validation

import (
	"strings"
	"unicode"
)

// Reason описывает причину, по которой номер карты признан корректным или отклонён.
type Reason string

const (
	ReasonOK       Reason = "ok"
	ReasonEmpty    Reason = "empty"
	ReasonNonDigit Reason = "non_digit"
	ReasonLength   Reason = "length"
	ReasonChecksum Reason = "checksum"
)

const (
	// DefaultMinLength и DefaultMaxLength задают допустимую длину номера карты по умолчанию.
	DefaultMinLength = 13
	DefaultMaxLength = 16
)

// Policy задаёт допустимый диапазон количества цифр в номере карты (границы включительно).
type Policy struct {
	MinLength int
	MaxLength int
}

// DefaultPolicy возвращает политику длины 13..16 цифр.
func DefaultPolicy() Policy {
	return Policy{
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
	}
}

// IsValidCardNumber проверяет номер платёжной карты по алгоритму Луна с политикой длины по умолчанию.
func IsValidCardNumber(candidate string) bool {
	return DefaultPolicy().Validate(candidate)
}

// Validate проверяет номер карты и возвращает только итоговый вердикт.
func (p Policy) Validate(candidate string) bool {
	return p.Check(candidate) == ReasonOK
}

// Check проверяет номер карты и возвращает причину отказа либо ReasonOK.
//
// Удвоение цифр отсчитывается слева: удваиваются цифры с чётным индексом
// начиная с нуля. Это отличается от классического варианта, где отсчёт идёт
// от последней цифры, и при чётной длине номера даёт другой результат.
func (p Policy) Check(candidate string) Reason {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ReasonEmpty
	}

	digits, ok := NormalizeCardNumber(trimmed)
	if !ok {
		return ReasonNonDigit
	}

	if len(digits) < p.MinLength || len(digits) > p.MaxLength {
		return ReasonLength
	}

	if luhnSum(digits)%10 != 0 {
		return ReasonChecksum
	}

	return ReasonOK
}

// NormalizeCardNumber удаляет пробельные символы и дефисы и возвращает
// последовательность цифр. Второй результат равен false, если после очистки
// строка пуста или содержит что-либо кроме цифр 0-9.
func NormalizeCardNumber(candidate string) (string, bool) {
	var b strings.Builder
	b.Grow(len(candidate))

	for _, ch := range candidate {
		if isSeparator(ch) {
			continue
		}
		if !isASCIIDigit(ch) {
			return "", false
		}
		b.WriteRune(ch)
	}

	if b.Len() == 0 {
		return "", false
	}

	return b.String(), true
}

// MaskCardNumber скрывает все цифры номера, кроме последних четырёх.
// Некорректный или слишком короткий ввод маскируется полностью.
func MaskCardNumber(candidate string) string {
	const visible = 4

	digits, ok := NormalizeCardNumber(strings.TrimSpace(candidate))
	if !ok {
		return "****"
	}
	if len(digits) <= visible {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-visible) + digits[len(digits)-visible:]
}

// luhnSum ожидает строку, состоящую только из цифр.
func luhnSum(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		digit := int(digits[i] - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum
}

func isASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSeparator(ch rune) bool {
	return ch == '-' || unicode.IsSpace(ch)
}
