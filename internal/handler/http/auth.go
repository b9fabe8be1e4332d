package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"accountgate/internal/logger"
	"accountgate/internal/service"
	"accountgate/internal/store"
	"accountgate/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundAccount, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoAccountWasFound) || errors.Is(err, service.ErrWrongSecret):
			// Never reveal which of the two failed.
			log.Err(err).Msg("no account was found/wrong secret")
			http.Error(w, "invalid login/secret", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundAccount.AccountID).Str("login", foundAccount.Login).Msg("account successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundAccount)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
