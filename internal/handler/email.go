package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/errs"
	"github.com/deppfellow/portal-api/internal/lib/email"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/labstack/echo/v4"
)

// EmailPreviewHandler renders the transactional templates with sample data.
// It is only routed in the local environment.
type EmailPreviewHandler struct {
	Handler
}

func NewEmailPreviewHandler(s *server.Server) *EmailPreviewHandler {
	return &EmailPreviewHandler{
		Handler: NewHandler(s),
	}
}

func (h *EmailPreviewHandler) Preview(c echo.Context) error {
	name := email.Template(c.Param("template"))

	data, ok := email.PreviewData[name]
	if !ok {
		code := "EMAIL_TEMPLATE_NOT_FOUND"
		return errs.NewNotFoundError("Email template not found", true, &code)
	}

	html, err := email.Render(name, data)
	if err != nil {
		return err
	}

	return c.HTML(http.StatusOK, html)
}
