package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gymtrack/gymtrack-web/server/internal/api/respond"
	"github.com/gymtrack/gymtrack-web/server/internal/register"
)

// RegisterHandler serves the sign-up form.
type RegisterHandler struct {
	submitter *register.Submitter
	log       zerolog.Logger
}

// NewRegisterHandler creates a handler that creates accounts through users.
func NewRegisterHandler(users register.UserCreator, log zerolog.Logger) *RegisterHandler {
	return &RegisterHandler{submitter: register.NewSubmitter(users, log), log: log}
}

// Show handles GET /register
func (h *RegisterHandler) Show(w http.ResponseWriter, r *http.Request) {
	respond.WriteHTML(w, http.StatusOK, pages, "register", &register.Form{})
}

// Submit handles POST /register. On success it redirects with 303; otherwise
// the form is rendered again with the error banner and status 422.
func (h *RegisterHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn().Err(err).Msg("unreadable register form")
		respond.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	form := &register.Form{
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	if next := h.submitter.Submit(r.Context(), form); next != "" {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	respond.WriteHTML(w, http.StatusUnprocessableEntity, pages, "register", form)
}
