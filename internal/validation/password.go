package validation

import (
	"unicode"
	"unicode/utf8"
)

// PasswordReason описывает причину отклонения пароля.
type PasswordReason string

const (
	PasswordOK          PasswordReason = "ok"
	PasswordLength      PasswordReason = "length"
	PasswordNoUppercase PasswordReason = "no_uppercase"
	PasswordNoLowercase PasswordReason = "no_lowercase"
	PasswordNoDigit     PasswordReason = "no_digit"
	PasswordNoSpecial   PasswordReason = "no_special"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 30
)

// IsValidPassword проверяет, что пароль удовлетворяет требованиям сложности.
func IsValidPassword(password string) bool {
	return CheckPassword(password) == PasswordOK
}

// CheckPassword возвращает первое нарушенное правило либо PasswordOK.
// Пароль должен содержать от 8 до 30 символов, заглавную и строчную
// латинскую букву, цифру и хотя бы один символ, не являющийся буквой,
// цифрой или подчёркиванием.
func CheckPassword(password string) PasswordReason {
	n := utf8.RuneCountInString(password)
	if n < passwordMinLength || n > passwordMaxLength {
		return PasswordLength
	}

	var upper, lower, digit, special bool
	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			upper = true
		case ch >= 'a' && ch <= 'z':
			lower = true
		case unicode.IsDigit(ch):
			digit = true
		case isWordRune(ch):
		default:
			special = true
		}
	}

	switch {
	case !upper:
		return PasswordNoUppercase
	case !lower:
		return PasswordNoLowercase
	case !digit:
		return PasswordNoDigit
	case !special:
		return PasswordNoSpecial
	}

	return PasswordOK
}

// isWordRune сообщает, является ли символ буквой, числовым символом любой
// категории (включая ² и ½) или подчёркиванием.
func isWordRune(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsNumber(ch)
}
