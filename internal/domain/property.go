package domain

import (
	"encoding/json"
	"time"
)

type PropertyType string
type DealType string
type PropertyStatus string

const (
	House     PropertyType = "house"
	Apartment PropertyType = "apartment"
	Office    PropertyType = "office"

	Sale DealType = "sale"
	Rent DealType = "rent"

	Ready  PropertyStatus = "ready"
	New    PropertyStatus = "new"
	Shared PropertyStatus = "shared"
)

// Property is one listing unit. ID is zero until the first successful save;
// the server assigns it on create.
type Property struct {
	ID           int64            `json:"id,omitempty"`
	AgentCode    string           `json:"agent_code,omitempty"`
	PropertyCode string           `json:"property_code,omitempty"`
	PropertyType PropertyType     `json:"property_type"`
	DealType     DealType         `json:"deal_type"`
	Status       PropertyStatus   `json:"status"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at,omitempty"`
	UpdatedAt    time.Time        `json:"updated_at,omitempty"`
	Details      []PropertyDetail `json:"details"`
	Documents    []Attachment     `json:"documents,omitempty"`
	Owner        *PropertyOwner   `json:"owner,omitempty"`
}

// PropertyDetail is the per-language sub-record. The numeric and boolean
// fields below the language block are not language-dependent but are stored
// on every language row; the editor keeps them identical across rows.
type PropertyDetail struct {
	ID         int64  `json:"id,omitempty"`
	PropertyID int64  `json:"property_id,omitempty"`
	Language   string `json:"language"`

	City           string          `json:"city"`
	District       string          `json:"district"`
	Address        string          `json:"address"`
	HeatingType    string          `json:"heating_type"`
	PlotFacilities json.RawMessage `json:"plot_facilities,omitempty"`
	Equipment      json.RawMessage `json:"equipment,omitempty"`
	RoadAccess     string          `json:"road_access"`
	Description    string          `json:"description"`

	FloorNumber int     `json:"floor_number"`
	TotalFloors int     `json:"total_floors"`
	LivingArea  float64 `json:"living_area"`
	Rooms       int     `json:"rooms"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	PlotSize    float64 `json:"plot_size"`
	Price       float64 `json:"price"`

	Registered  bool `json:"registered"`
	WaterSupply bool `json:"water_supply"`
	Sewage      bool `json:"sewage"`
}

type ContractStatus string

const (
	ContractActive  ContractStatus = "active"
	ContractPending ContractStatus = "pending"
	ContractExpired ContractStatus = "expired"
)

type PropertyOwner struct {
	ID               int64          `json:"id,omitempty"`
	PropertyID       int64          `json:"property_id,omitempty"`
	PropertiesCount  int            `json:"properties_count"`
	ContractStatus   ContractStatus `json:"contract_status"`
	ContractNumber   string         `json:"contract_number"`
	ContractEndDate  time.Time      `json:"contract_end_date"`
	ContractFilePath string         `json:"contract_file_path,omitempty"`
}

type FileType string

const (
	FileImage    FileType = "image"
	FileVideo    FileType = "video"
	FileDocument FileType = "document"
)

// Attachment is an uploaded media or document file owned by a listing.
// Attachments exist only for records the server has assigned an id to.
type Attachment struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id,omitempty"`
	FileType   FileType  `json:"file_type"`
	FilePath   string    `json:"file_path"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
