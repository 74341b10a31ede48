package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/store"
	"github.com/MKhiriev/go-mission-hub/internal/utils"
	"github.com/MKhiriev/go-mission-hub/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	credentials := decodeLenient[models.Credentials](r)

	user, err := h.services.AccountService.Signup(r.Context(), credentials)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			utils.WriteJSON(w, models.NewAccountFailure(msgUserAlreadyExists), http.StatusOK)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAccountSuccess(msgSignupSucceeded, user.UserUID), http.StatusOK)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	credentials := decodeLenient[models.Credentials](r)

	user, err := h.services.AccountService.Signin(r.Context(), credentials)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			utils.WriteJSON(w, models.NewAccountFailure(msgWrongCredentials), http.StatusOK)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAccountSuccess(msgSigninSucceeded, user.UserUID), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	uid := models.ParseUID(r.URL.Query().Get("uid"))

	user, err := h.services.AccountService.GetUser(r.Context(), uid)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteJSON(w, models.ErrorResponse{Error: msgUserDoesNotExist}, http.StatusNotFound)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserEnvelope{User: models.NewUserView(user)}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	update := decodeLenient[models.UserUpdate](r)

	user, err := h.services.AccountService.UpdateUser(r.Context(), update)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteJSON(w, models.NewAccountFailure(msgUserDoesNotExist), http.StatusNotFound)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAccountSuccess(msgUpdateSucceeded, user.UserUID), http.StatusOK)
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgEndpointDoesNotExist, Message: msgEndpointDoesNotExist}, http.StatusNotFound)
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	message := http.StatusText(status)
	if status == http.StatusInternalServerError {
		message = msgInternalServerError
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
