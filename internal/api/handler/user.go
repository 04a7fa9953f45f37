package handler

import (
	"net/http"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
	"github.com/vfg2006/leads-analytics-api/pkg/validation"
)

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if errs := validation.Validate(req); errs != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados do usuário inválidos", errs)
			return
		}

		user, err := service.CreateUser(&req)
		if err != nil {
			logger.WithError(err).Error("auth: erro ao criar usuário")
			writeAuthError(w, err)
			return
		}

		logger.WithField("user_id", user.ID).Info("auth: usuário criado")
		writeJSON(w, r, http.StatusCreated, user)
	})
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("auth: erro ao listar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	})
}
