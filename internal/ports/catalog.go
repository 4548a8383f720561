package ports

import (
	"context"

	"github.com/DmitruNS/kuc/internal/domain"
)

// PropertyCatalog is the remote listing API. All persistence lives behind
// it; the console never stores listing data of its own.
type PropertyCatalog interface {
	List(ctx context.Context, filter domain.ListingFilter, language string) ([]*domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	SetStatus(ctx context.Context, id int64, isActive bool) error
	ExportAll(ctx context.Context) ([]byte, error)
	ExportSelected(ctx context.Context, ids []int64) ([]byte, error)
}

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}
