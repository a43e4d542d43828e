package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"clinic-records/internal/usecase"
	"clinic-records/pkg/response"
)

// maxBodyBytes bounds a create request body.
const maxBodyBytes = 1 << 20

// RecordHandler serves list and create for one record resource.
type RecordHandler[Req any, Resp any] struct {
	recordUsecase usecase.RecordUsecase[Req, Resp]
	label         string
}

// NewRecordHandler builds a handler; label is the plural display name used in
// messages ("doctors").
func NewRecordHandler[Req any, Resp any](recordUsecase usecase.RecordUsecase[Req, Resp], label string) *RecordHandler[Req, Resp] {
	return &RecordHandler[Req, Resp]{
		recordUsecase: recordUsecase,
		label:         label,
	}
}

func (h *RecordHandler[Req, Resp]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.List(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to get "+h.label)
		return
	}

	response.JSON(w, http.StatusOK, records)
}

func (h *RecordHandler[Req, Resp]) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[Req](http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to create record in "+h.label)
		return
	}

	response.JSON(w, http.StatusOK, record)
}

// decodeBody reads exactly one non-null JSON value from body.
func decodeBody[Req any](body io.Reader) (*Req, error) {
	dec := json.NewDecoder(body)

	var req *Req
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, usecase.ErrInvalidRequest
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after request body")
	}
	return req, nil
}

func (h *RecordHandler[Req, Resp]) writeError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.ValidationError(w, validationErr.Fields)
	case errors.Is(err, usecase.ErrInvalidRequest):
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		response.ServiceUnavailable(w, "Record store unavailable")
	default:
		response.InternalServerError(w, fallback)
	}
}
