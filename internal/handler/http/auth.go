package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	if err := h.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("registration payload failed validation")
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Str("email", credentials.Email).Msg("email already registered")
			utils.WriteError(w, fmt.Sprintf("User with email '%s' already exists", credentials.Email), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, "Failed to register user", statusFromError(err))
			return
		}
	}

	log.Info().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	if err := h.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("login payload failed validation")
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("email", credentials.Email).Msg("failed login attempt")
			utils.WriteError(w, "Incorrect email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, "Login failed", statusFromError(err))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, "Login failed", http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		User:        foundUser,
	}, http.StatusOK)
}
