package domain

import "time"

// Audience segments the catalog between professional and consumer
// storefronts. It only affects what is shown, never order semantics.
type Audience string

const (
	AudiencePro         Audience = "pro"
	AudienceParticulier Audience = "particulier"
	AudienceBoth        Audience = "both"
)

func (a Audience) Valid() bool {
	switch a {
	case AudiencePro, AudienceParticulier, AudienceBoth:
		return true
	}
	return false
}

type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityOutOfStock Availability = "out-of-stock"
	AvailabilityOnOrder    Availability = "on-order"
)

type Product struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Reference   string       `bson:"reference" json:"reference"`
	Description string       `bson:"description" json:"description"`
	Category    string       `bson:"category" json:"category"`
	Subcategory string       `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Images      []string     `bson:"images" json:"images"`
	// Price is nil for quote-only references that carry no public price.
	Price        *float64     `bson:"price,omitempty" json:"price,omitempty"`
	Availability Availability `bson:"availability" json:"availability"`
	Featured     bool         `bson:"featured" json:"featured"`
	Audience     Audience     `bson:"audience,omitempty" json:"audience,omitempty"`
	IsActive     bool         `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Orderable reports whether the product can be placed in a cart: it must
// be active and carry a public price to snapshot.
func (p Product) Orderable() bool {
	return p.IsActive && p.Price != nil
}

// FirstImage returns the image snapshotted onto order items, empty when
// the product has none.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// VisibleTo reports whether the product belongs to the given storefront
// segment. Products without an audience are visible everywhere.
func (p Product) VisibleTo(a Audience) bool {
	return p.Audience == "" || p.Audience == AudienceBoth || p.Audience == a
}
