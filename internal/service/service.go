// Package service реализует бизнес-логику сервиса проверки карт.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmeshcher/cardcheck/internal/calculator"
	"github.com/mmeshcher/cardcheck/internal/convert"
	"github.com/mmeshcher/cardcheck/internal/metrics"
	"github.com/mmeshcher/cardcheck/internal/model"
	"github.com/mmeshcher/cardcheck/internal/validation"
)

// ErrUnknownOperation возвращается для неизвестной операции калькулятора.
var ErrUnknownOperation = errors.New("unknown operation")

// Service содержит бизнес-логику сервиса проверки карт.
type Service struct {
	policy  validation.Policy
	metrics *metrics.Metrics
}

// NewService создаёт новый сервис с указанной политикой длины номера и метриками.
// Если m равен nil, метрики не записываются.
func NewService(policy validation.Policy, m *metrics.Metrics) *Service {
	return &Service{
		policy:  policy,
		metrics: m,
	}
}

// CheckCard проверяет номер карты и возвращает результат с замаскированным номером.
func (s *Service) CheckCard(ctx context.Context, number string) model.CardCheck {
	reason := s.policy.Check(number)

	if s.metrics != nil {
		s.metrics.CardChecks.WithLabelValues(string(reason)).Inc()
	}

	return model.CardCheck{
		Number: validation.MaskCardNumber(number),
		Valid:  reason == validation.ReasonOK,
		Reason: string(reason),
	}
}

// CheckPassword проверяет сложность пароля.
func (s *Service) CheckPassword(ctx context.Context, password string) model.PasswordCheck {
	reason := validation.CheckPassword(password)

	if s.metrics != nil {
		s.metrics.PasswordChecks.WithLabelValues(string(reason)).Inc()
	}

	return model.PasswordCheck{
		Valid:  reason == validation.PasswordOK,
		Reason: string(reason),
	}
}

// ConvertTemperature переводит значение из указанной шкалы в обе шкалы.
func (s *Service) ConvertTemperature(ctx context.Context, value float64, scale string) (model.Conversion, error) {
	from, err := convert.ParseScale(scale)
	if err != nil {
		return model.Conversion{}, fmt.Errorf("parse scale %q: %w", scale, err)
	}

	c, f, err := convert.Convert(value, from)
	if err != nil {
		return model.Conversion{}, err
	}

	if s.metrics != nil {
		s.metrics.Conversions.WithLabelValues(string(from)).Inc()
	}

	return model.Conversion{Celsius: c, Fahrenheit: f}, nil
}

// Calculate выполняет операцию калькулятора над a и b.
func (s *Service) Calculate(ctx context.Context, operation string, a, b float64) (float64, error) {
	op, ok := calculator.Lookup(operation)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}

	result, err := op.Apply(a, b)

	if s.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.Calculations.WithLabelValues(op.Name, outcome).Inc()
	}

	if err != nil {
		return 0, err
	}
	return result, nil
}
