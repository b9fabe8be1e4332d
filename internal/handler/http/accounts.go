package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"accountgate/internal/logger"
	"accountgate/internal/utils"
	"accountgate/models"

	"github.com/go-chi/chi/v5"
)

// provisionAccount is the guarded create endpoint.
//
// The candidate login travels in the URL path; the optional JSON body carries
// the display name and the capability grants for the new account. The actor
// is the authenticated principal placed in the context by the auth middleware.
//
// Responses:
//   - 200 with {account_id, login, secret}; the secret is shown exactly once.
//   - 403 when the actor lacks the accounts:create capability.
//   - 409 when the login is already registered (pre-check or unique index).
//   - 422 when the login shape or a requested capability is invalid.
//   - 500 on unexpected store failure; safe to retry, nothing was written.
func (h *Handler) provisionAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated account in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	login := chi.URLParam(r, "login")
	provisioned, err := h.services.AccountService.ProvisionAccount(ctx, actorID, login, request)
	if err != nil {
		log.Err(err).Str("login", login).Msg("account provisioning rejected")
		respondError(w, err)
		return
	}

	log.Info().
		Int64("actor_id", actorID).
		Str("login", provisioned.Account.Login).
		Msg("account provisioned")

	utils.WriteJSON(w, models.ProvisionResponse{
		AccountID: provisioned.Account.PublicID,
		Login:     provisioned.Account.Login,
		Secret:    provisioned.Secret,
	}, http.StatusOK)
}

// listAccounts returns the public projections of all accounts matching the
// optional ?capability= and ?q= (login prefix) filters.
func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.AccountFilter{
		Capability:  models.Capability(r.URL.Query().Get("capability")),
		LoginPrefix: r.URL.Query().Get("q"),
	}

	accounts, err := h.services.AccountService.ListAccounts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("account listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}

	utils.WriteJSON(w, models.ListAccountsResponse{
		Accounts: views,
		Length:   len(views),
	}, http.StatusOK)
}

// getAccount returns the public projection of a single account by login.
func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	login := chi.URLParam(r, "login")
	account, err := h.services.AccountService.GetAccount(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("account lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, account.View(), http.StatusOK)
}

// me returns the public projection of the authenticated principal.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated account in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	account, err := h.services.AccountService.GetAccountByID(ctx, actorID)
	if err != nil {
		log.Err(err).Int64("id", actorID).Msg("identity lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, account.View(), http.StatusOK)
}
