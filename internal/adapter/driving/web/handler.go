// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/seedpass/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/seedpass/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/seedpass/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/seedpass/internal/application"
	"github.com/ericfisherdev/seedpass/internal/domain/model"
	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

const appTitle = "Password Generator"

// Handler is the web GUI driving adapter that serves HTML via templ components.
// It keeps no per-user state: each page is built from the request and the store.
type Handler struct {
	passwordSvc   *application.PasswordService
	defaultLength int
	aboutHTML     string
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	passwordSvc *application.PasswordService,
	defaultLength int,
	logger *slog.Logger,
) *Handler {
	aboutHTML, err := aboutPageHTML()
	if err != nil {
		logger.Error("failed to render about page", "error", err)
	}

	return &Handler{
		passwordSvc:   passwordSvc,
		defaultLength: defaultLength,
		aboutHTML:     aboutHTML,
		logger:        logger,
	}
}

// GeneratorPage renders the empty generator form.
func (h *Handler) GeneratorPage(w http.ResponseWriter, r *http.Request) {
	page := vm.GeneratorPageViewModel{
		CSRFToken: csrfToken(w, r),
		Length:    h.defaultLength,
	}
	h.render(w, r, http.StatusOK, "generator", pages.Generator(page))
}

// Generate handles the generator form: it validates the seed text, generates
// and stores the password, then re-renders the form with the result.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	page := vm.GeneratorPageViewModel{
		CSRFToken: csrfToken(w, r),
		SeedText:  r.PostFormValue("seed_text"),
		Length:    h.defaultLength,
	}

	if raw := r.PostFormValue("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			page.Status = vm.Status{Kind: vm.StatusError, Message: "Length must be a positive number"}
			h.render(w, r, http.StatusBadRequest, "generator", pages.Generator(page))
			return
		}
		if n > 0 {
			page.Length = n
		}
	}

	rec, err := h.passwordSvc.Generate(r.Context(), page.SeedText, page.Length)
	if err != nil {
		status, msg := h.generateErrorStatus(err)
		page.Status = vm.Status{Kind: vm.StatusError, Message: msg}
		h.render(w, r, status, "generator", pages.Generator(page))
		return
	}

	page.SeedText = rec.SeedText
	page.Password = rec.Password
	page.Status = vm.Status{Kind: vm.StatusSuccess, Message: "Password generated and stored!"}
	h.render(w, r, http.StatusOK, "generator", pages.Generator(page))
}

// SavedPage renders the stored passwords filtered by ?q= and sorted by
// ?sort= and ?order=.
func (h *Handler) SavedPage(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := model.ParseListQuery(params.Get("sort"), params.Get("order"), params.Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.passwordSvc.List(r.Context(), q)
	if err != nil {
		h.logger.Error("failed to list passwords", "error", err)
		page := toSavedPageViewModel(q, nil)
		page.Status = vm.Status{Kind: vm.StatusError, Message: "Could not load saved passwords"}
		h.render(w, r, http.StatusServiceUnavailable, "saved", pages.Saved(page))
		return
	}

	h.render(w, r, http.StatusOK, "saved", pages.Saved(toSavedPageViewModel(q, records)))
}

// AboutPage renders the embedded about note.
func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", pages.About(vm.AboutPageViewModel{BodyHTML: h.aboutHTML}))
}

// generateErrorStatus maps a PasswordService.Generate error to an HTTP status
// and a user-facing message.
func (h *Handler) generateErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrEmptySeed):
		return http.StatusBadRequest, "Please enter some text!"
	case errors.Is(err, application.ErrInvalidLength):
		return http.StatusBadRequest, "Length must not exceed " + strconv.Itoa(application.MaxLength)
	case errors.Is(err, driven.ErrStorageUnavailable):
		h.logger.Error("failed to store password", "error", err)
		return http.StatusServiceUnavailable, "Could not save the password, storage is unavailable"
	default:
		h.logger.Error("failed to generate password", "error", err)
		return http.StatusInternalServerError, "Something went wrong"
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.Layout(appTitle, body).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
	}
}
