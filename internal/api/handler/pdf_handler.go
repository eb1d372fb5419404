package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

// PDFHandler exports the caller's current page as a PDF by delegating the
// rendering to the external backend and streaming the bytes through.
type PDFHandler struct {
	service ports.PDFService
	// frontendURL is the fallback origin when neither the body nor the
	// Referer header names a page.
	frontendURL string
}

func NewPDFHandler(service ports.PDFService, frontendURL string) *PDFHandler {
	return &PDFHandler{service: service, frontendURL: strings.TrimSuffix(frontendURL, "/")}
}

// Current handles POST /pdf/current.
//
// @Summary      Export the current page as PDF
// @Tags         pdf
// @Accept       json
// @Produce      application/pdf
// @Param        body  body      pdfRequest  false  "Page URL (falls back to Referer)"
// @Success      200   {file}    file
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /pdf/current [post]
func (h *PDFHandler) Current(c echo.Context) error {
	pageURL := h.resolvePageURL(c)

	doc, err := h.service.Generate(c.Request().Context(), pageURL)
	if err != nil {
		if errors.Is(err, domain.ErrPageNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Page not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error generating PDF"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, doc.ContentDisposition)
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}

// resolvePageURL picks the page to render: an explicit, well-formed URL from
// the body wins, then the Referer header, then the frontend root. A missing
// or malformed body is treated as empty, matching the optional contract.
func (h *PDFHandler) resolvePageURL(c echo.Context) string {
	var req pdfRequest
	if err := c.Bind(&req); err != nil {
		req = pdfRequest{}
	}

	if req.URL != "" {
		if u, err := url.Parse(req.URL); err == nil && u.Scheme != "" && u.Host != "" {
			return req.URL
		}
	}
	if referer := c.Request().Referer(); referer != "" {
		return referer
	}
	return h.frontendURL + "/"
}
