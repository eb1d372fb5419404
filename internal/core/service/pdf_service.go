package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/userdash/user-dashboard/internal/api/metrics"
	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
	"github.com/userdash/user-dashboard/pkg/pdfname"
)

// PDFService forwards render requests to the backend's /Pdf endpoint and
// streams the binary result through. The backend takes the page URL as a
// query parameter, not a body.
type PDFService struct {
	gateway ports.Gateway
	logger  zerolog.Logger
}

func NewPDFService(gateway ports.Gateway, logger zerolog.Logger) *PDFService {
	return &PDFService{gateway: gateway, logger: logger}
}

func (s *PDFService) Generate(ctx context.Context, pageURL string) (*ports.PDFDocument, error) {
	resp, err := s.gateway.Post(ctx, "/Pdf?url="+url.QueryEscape(pageURL), nil)
	if err != nil {
		if ports.UpstreamStatus(err) == http.StatusNotFound {
			metrics.PDFExportsTotal.WithLabelValues("not_found").Inc()
			return nil, domain.ErrPageNotFound
		}
		metrics.PDFExportsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("page_url", pageURL).Msg("pdf generation failed")
		return nil, err
	}

	doc := &ports.PDFDocument{
		Data:               resp.Body,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}
	if doc.ContentType == "" {
		doc.ContentType = "application/pdf"
	}
	if doc.ContentDisposition == "" {
		doc.ContentDisposition = fmt.Sprintf("attachment; filename=%q", pdfname.FromURL(pageURL))
	}

	metrics.PDFExportsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("page_url", pageURL).Int("bytes", len(doc.Data)).Msg("pdf generated")
	return doc, nil
}
