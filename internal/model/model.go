// Package model содержит доменные сущности сервиса проверки карт.
package model

// CardCheck описывает результат проверки номера платёжной карты.
// Number содержит только замаскированный номер.
type CardCheck struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// PasswordCheck описывает результат проверки сложности пароля.
type PasswordCheck struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// Conversion содержит значение температуры в обеих шкалах.
type Conversion struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}
