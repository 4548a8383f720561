package app

import (
	"context"
	"encoding/base64"

	expcsv "github.com/DmitruNS/kuc/internal/adapters/exporter/csv"
	exreg "github.com/DmitruNS/kuc/internal/adapters/exporter/registry"
	expxlsx "github.com/DmitruNS/kuc/internal/adapters/exporter/xlsx"
	"github.com/DmitruNS/kuc/internal/usecase/auth"
	"github.com/DmitruNS/kuc/internal/usecase/listing"
)

type ExportAPI struct {
	guard
	svc *listing.Service
}

func NewExportAPI(svc *listing.Service, authSvc *auth.Service) *ExportAPI {
	return &ExportAPI{guard: guard{auth: authSvc}, svc: svc}
}

type ExportResponse struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"content_b64"`
}

// ExportAllBase64 downloads the server's export of the whole list. The
// webview turns the payload into a file save dialog.
func (a *ExportAPI) ExportAllBase64() (ExportResponse, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return ExportResponse{}, err
	}
	blob, err := a.svc.ExportAll(ctx)
	if err != nil {
		return ExportResponse{}, err
	}
	return ExportResponse{Filename: "properties_export.xlsx", ContentB64: base64.StdEncoding.EncodeToString(blob)}, nil
}

// ExportSelectedBase64 downloads the server's export of the selected
// subset. The selection set stays as it was; clearing it is a separate
// user action.
func (a *ExportAPI) ExportSelectedBase64() (ExportResponse, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return ExportResponse{}, err
	}
	blob, err := a.svc.ExportSelected(ctx)
	if err != nil {
		return ExportResponse{}, err
	}
	return ExportResponse{Filename: "properties_export.xlsx", ContentB64: base64.StdEncoding.EncodeToString(blob)}, nil
}

// ExportLocalBase64 writes the currently loaded rows with an offline
// exporter (csv or xlsx) without a server round trip.
func (a *ExportAPI) ExportLocalBase64(format string) (ExportResponse, error) {
	if err := a.check(); err != nil {
		return ExportResponse{}, err
	}
	blob, err := a.svc.ExportLocal(format)
	if err != nil {
		return ExportResponse{}, err
	}
	return ExportResponse{Filename: "properties_export." + format, ContentB64: base64.StdEncoding.EncodeToString(blob)}, nil
}

// NewDefaultExporterRegistry wires the offline exporters.
func NewDefaultExporterRegistry() *exreg.Registry {
	reg := exreg.New()
	reg.Register(expcsv.New())
	reg.Register(expxlsx.New())
	return reg
}
