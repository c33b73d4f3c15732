// Package handler содержит HTTP-обработчики API сервиса проверки карт.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mmeshcher/cardcheck/internal/calculator"
	"github.com/mmeshcher/cardcheck/internal/convert"
	"github.com/mmeshcher/cardcheck/internal/metrics"
	"github.com/mmeshcher/cardcheck/internal/model"
	"github.com/mmeshcher/cardcheck/internal/service"
)

// maxCardBodySize ограничивает размер тела запроса проверки карты.
const maxCardBodySize = 4 << 10

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CheckCard(ctx context.Context, number string) model.CardCheck
	CheckPassword(ctx context.Context, password string) model.PasswordCheck
	ConvertTemperature(ctx context.Context, value float64, scale string) (model.Conversion, error)
	Calculate(ctx context.Context, operation string, a, b float64) (float64, error)
}

// Handler реализует HTTP-обработчики API сервиса проверки карт.
type Handler struct {
	service Service
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
// Если m равен nil, длительность запросов не измеряется.
func NewHandler(s Service, logger *zap.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
		metrics: m,
	}
}

// ValidateCard проверяет номер карты, переданный в теле запроса как текст.
func (h *Handler) ValidateCard(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCardBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result := h.service.CheckCard(r.Context(), string(body))

	h.logger.Debug("card checked",
		zap.String("number", result.Number),
		zap.String("reason", result.Reason),
	)

	h.writeJSON(w, result)
}

type passwordRequest struct {
	Password string `json:"password"`
}

// ValidatePassword проверяет сложность пароля.
func (h *Handler) ValidatePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.service.CheckPassword(r.Context(), req.Password))
}

// ConvertTemperature переводит температуру, заданную параметрами value и scale.
func (h *Handler) ConvertTemperature(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	conv, err := h.service.ConvertTemperature(r.Context(), value, r.URL.Query().Get("scale"))
	if err != nil {
		if errors.Is(err, convert.ErrUnknownScale) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		h.logger.Error("convert temperature error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, conv)
}

type calculateRequest struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

type calculateResponse struct {
	Result float64 `json:"result"`
}

// Calculate выполняет арифметическую операцию.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(r.Context(), req.Operation, req.A, req.B)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownOperation):
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		case errors.Is(err, calculator.ErrDivisionByZero):
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		default:
			h.logger.Error("calculate error", zap.Error(err), zap.String("operation", req.Operation))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, calculateResponse{Result: result})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}
