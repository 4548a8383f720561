package ports

import "github.com/DmitruNS/kuc/internal/domain"

// Exporter writes the currently loaded listing rows to a spreadsheet-like
// byte payload. This is the offline counterpart of the server-side export
// endpoint.
type Exporter interface {
	Format() string
	Export(language string, properties []*domain.Property) ([]byte, error)
}
