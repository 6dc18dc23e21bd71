package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pennyledger/internal/adapter/http/dto"
	"pennyledger/internal/domain"
	"pennyledger/internal/usecase"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	ListEntries(ctx context.Context) ([]*domain.Entry, error)
	CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id string) (*domain.Entry, error)
}

// EntryHandler handles entry-related HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// List returns all entries, most recent effective date first.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryUC.ListEntries(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch entries")
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	writeSuccess(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Create validates and persists a new entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.entryUC.CreateEntry(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to create entry")
			writeError(w, status, "failed to create entry")
			return
		}

		writeError(w, status, err.Error())
		return
	}

	writeSuccess(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Delete removes an entry by ID and returns the removed entry.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID")
		return
	}

	entry, err := h.entryUC.DeleteEntry(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("id", id).Msg("failed to delete entry")
			writeError(w, status, "failed to delete entry")
			return
		}

		writeError(w, status, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, dto.EntryFromDomain(entry))
}
