package ports

import (
	"context"

	"github.com/userdash/user-dashboard/internal/core/domain"
)

// UserService defines the proxy use-cases for user records. Create and Update
// expect payloads already validated at the API boundary; the backend is never
// trusted to re-validate.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, data domain.UserFormData) (*domain.User, error)
	Update(ctx context.Context, id int, patch domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}

// RoleService exposes the backend's read-mostly role reference data.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
}

// StatsService relays the three raw statistics reads. Aggregation into
// domain.UserStats happens client-side, not here.
type StatsService interface {
	ActiveCounts(ctx context.Context) (*domain.ActiveCounts, error)
	RoleDistribution(ctx context.Context) ([]domain.RoleCount, error)
	MonthlyRegistrations(ctx context.Context) ([]domain.MonthlyRegistration, error)
}

// PDFDocument is a rendered PDF streamed through from the backend.
type PDFDocument struct {
	Data               []byte
	ContentType        string
	ContentDisposition string
}

// PDFService renders the page at pageURL to PDF via the external backend.
type PDFService interface {
	Generate(ctx context.Context, pageURL string) (*PDFDocument, error)
}
