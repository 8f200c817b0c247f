package domain

import (
	"context"
	"errors"
)

var (
	ErrImageNotFound   = errors.New("image not found in catalog")
	ErrServiceNotFound = errors.New("service not found")
)

// VariantKind selects a device-class-specific image source.
type VariantKind string

const (
	VariantNone    VariantKind = ""
	VariantDesktop VariantKind = "desktop"
	VariantMobile  VariantKind = "mobile"
)

// ImageSource is one resolved source URL with optional intrinsic dimensions.
type ImageSource struct {
	Src    string `json:"src"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ResolvedImage is a catalog entry after resolution. ImageURL always holds a
// usable single source for callers that ignore variants.
type ResolvedImage struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	ImageHint   string       `json:"imageHint,omitempty"`
	ImageURL    string       `json:"imageUrl"`
	Desktop     *ImageSource `json:"desktop,omitempty"`
	Mobile      *ImageSource `json:"mobile,omitempty"`
}

// ImageCatalog is the read-only placeholder-image lookup table, built once at
// startup and safe for unrestricted concurrent reads.
type ImageCatalog interface {
	// Get returns the resolved entry for id, or false when the id is unknown.
	Get(id string) (*ResolvedImage, bool)
	// Resolve returns the source for id honoring variant fallback precedence:
	// requested variant, then the other variant, then the flat source.
	Resolve(id string, variant VariantKind) (*ImageSource, error)
	// Fallback is the asset consumers substitute when an id does not resolve.
	Fallback() *ImageSource
}

// Service is one offered service in the static catalog.
type Service struct {
	Key             string `json:"key"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	CardDescription string `json:"cardDescription"`
	Description     string `json:"description"`
	ImageID         string `json:"imageId"`
	IconName        string `json:"iconName"`
}

// ServiceCard is the homepage/navigation projection of a Service.
type ServiceCard struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Href        string `json:"href"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
}

// ServiceDetail is a service joined with its resolved hero image. Image is the
// fallback asset when the catalog reference is broken.
type ServiceDetail struct {
	Service
	Image      *ResolvedImage `json:"image,omitempty"`
	Paragraphs []string       `json:"paragraphs"`
}

// ServiceCatalog is the static list of offered services.
type ServiceCatalog interface {
	All() []Service
	Cards() []ServiceCard
	BySlug(slug string) (*Service, bool)
}

// CatalogUsecase exposes the read side consumed by the site pages.
type CatalogUsecase interface {
	ListServices(ctx context.Context) []ServiceCard
	GetService(ctx context.Context, slug string) (*ServiceDetail, error)
	ResolveImage(ctx context.Context, id string, variant VariantKind) (*ImageSource, error)
	GetImage(ctx context.Context, id string) (*ResolvedImage, error)
	// FallbackImage is the asset callers substitute for unresolvable ids.
	FallbackImage(ctx context.Context) *ImageSource
}
