package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listItems").Msg("no authenticated user in context")
		utils.WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items, err := h.services.ItemService.ListItems(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("owner_id", user.ID).Msg("unexpected error occurred during listing items")
		utils.WriteError(w, "Failed to retrieve items", http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("owner_id", user.ID).Int("count", len(items)).Msg("items successfully listed")

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createItem").Msg("no authenticated user in context")
		utils.WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var request models.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("name", request.Name).Msg("item payload failed validation")
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	createdItem, err := h.services.ItemService.CreateItem(ctx, user.ID, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNameAlreadyExists):
			log.Warn().Str("name", request.Name).Int64("owner_id", user.ID).Msg("item name already exists")
			utils.WriteError(w, fmt.Sprintf("Item with name '%s' already exists", request.Name), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item creation")
			utils.WriteError(w, "Failed to create item", statusFromError(err))
			return
		}
	}

	log.Info().Int64("id", createdItem.ID).Int64("owner_id", user.ID).Msg("item successfully created")

	utils.WriteJSON(w, createdItem, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getItem").Msg("no authenticated user in context")
		utils.WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Msg("non-numeric item id in path")
		utils.WriteError(w, "Invalid item ID", http.StatusUnprocessableEntity)
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, itemID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			log.Warn().Int64("id", itemID).Int64("owner_id", user.ID).Msg("item not found")
			utils.WriteError(w, fmt.Sprintf("Item with ID %d not found", itemID), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", itemID).Msg("unexpected error occurred during item lookup")
			utils.WriteError(w, "Failed to retrieve item", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
