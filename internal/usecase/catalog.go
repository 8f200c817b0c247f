package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go-acoustics-backend/internal/domain"
)

type catalogUsecase struct {
	services domain.ServiceCatalog
	images   domain.ImageCatalog
	log      *slog.Logger
}

// NewCatalogUsecase creates the read-side usecase over the static catalogs.
func NewCatalogUsecase(services domain.ServiceCatalog, images domain.ImageCatalog, log *slog.Logger) domain.CatalogUsecase {
	return &catalogUsecase{
		services: services,
		images:   images,
		log:      log,
	}
}

func (uc *catalogUsecase) ListServices(_ context.Context) []domain.ServiceCard {
	return uc.services.Cards()
}

// GetService returns the detail page data for a slug. A broken image
// reference degrades to the fallback asset instead of failing the page.
func (uc *catalogUsecase) GetService(_ context.Context, slug string) (*domain.ServiceDetail, error) {
	svc, ok := uc.services.BySlug(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrServiceNotFound, slug)
	}

	img, ok := uc.images.Get(svc.ImageID)
	if !ok {
		uc.log.Warn("service references missing image", "service", svc.Key, "imageId", svc.ImageID)
		img = &domain.ResolvedImage{
			ID:          svc.ImageID,
			Description: svc.Title,
			ImageURL:    uc.images.Fallback().Src,
		}
	}

	return &domain.ServiceDetail{
		Service:    *svc,
		Image:      img,
		Paragraphs: splitParagraphs(svc.Description),
	}, nil
}

func (uc *catalogUsecase) ResolveImage(_ context.Context, id string, variant domain.VariantKind) (*domain.ImageSource, error) {
	return uc.images.Resolve(id, variant)
}

func (uc *catalogUsecase) GetImage(_ context.Context, id string) (*domain.ResolvedImage, error) {
	img, ok := uc.images.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrImageNotFound, id)
	}
	return img, nil
}

func (uc *catalogUsecase) FallbackImage(_ context.Context) *domain.ImageSource {
	return uc.images.Fallback()
}

// splitParagraphs breaks long-form copy on blank lines.
func splitParagraphs(text string) []string {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
