package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"go-acoustics-backend/internal/domain"
)

//go:embed placeholder-images.json
var placeholderData []byte

// rawVariant is one device-class source as authored in the catalog file.
type rawVariant struct {
	File     string `json:"file,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// rawEntry supports three authoring shapes: a flat file, a flat absolute
// imageUrl, or a desktop/mobile variant pair.
type rawEntry struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	ImageHint   string      `json:"imageHint,omitempty"`
	Folder      string      `json:"folder,omitempty"`
	File        string      `json:"file,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Desktop     *rawVariant `json:"desktop,omitempty"`
	Mobile      *rawVariant `json:"mobile,omitempty"`
}

type rawCatalog struct {
	PlaceholderImages []rawEntry `json:"placeholderImages"`
}

// ImageCatalog resolves logical image ids to asset URLs. Built once at
// startup, immutable afterwards, safe for concurrent reads.
type ImageCatalog struct {
	basePath string
	byID     map[string]*domain.ResolvedImage
}

// NewImageCatalog builds the catalog from the embedded placeholder data.
// An entry with no resolvable source fails construction, so content
// authoring mistakes surface at startup rather than as broken images.
func NewImageCatalog(basePath string) (*ImageCatalog, error) {
	return NewImageCatalogFrom(placeholderData, basePath)
}

// NewImageCatalogFrom builds a catalog from raw JSON.
func NewImageCatalogFrom(data []byte, basePath string) (*ImageCatalog, error) {
	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse placeholder catalog: %w", err)
	}

	c := &ImageCatalog{
		basePath: strings.TrimRight(basePath, "/"),
		byID:     make(map[string]*domain.ResolvedImage, len(raw.PlaceholderImages)),
	}

	for _, entry := range raw.PlaceholderImages {
		if entry.ID == "" {
			return nil, fmt.Errorf("invalid placeholder entry: missing id")
		}
		if _, exists := c.byID[entry.ID]; exists {
			return nil, fmt.Errorf("duplicate placeholder id %q", entry.ID)
		}

		resolved, err := c.resolveEntry(entry)
		if err != nil {
			return nil, err
		}
		c.byID[entry.ID] = resolved
	}

	return c, nil
}

func (c *ImageCatalog) resolveEntry(entry rawEntry) (*domain.ResolvedImage, error) {
	img := &domain.ResolvedImage{
		ID:          entry.ID,
		Description: entry.Description,
		ImageHint:   entry.ImageHint,
	}

	// Variant-aware entries: the flat ImageURL falls back to whichever
	// variant is present, desktop first.
	if entry.Desktop != nil || entry.Mobile != nil {
		img.Desktop = c.resolveVariant(entry.Folder, entry.Desktop)
		img.Mobile = c.resolveVariant(entry.Folder, entry.Mobile)

		switch {
		case img.Desktop != nil:
			img.ImageURL = img.Desktop.Src
		case img.Mobile != nil:
			img.ImageURL = img.Mobile.Src
		default:
			return nil, fmt.Errorf("invalid placeholder entry for id %q: missing desktop/mobile src", entry.ID)
		}
		return img, nil
	}

	// Flat entries: an absolute imageUrl is used verbatim, a file is joined
	// onto the configured base path.
	if entry.ImageURL != "" {
		img.ImageURL = entry.ImageURL
		return img, nil
	}
	if entry.File != "" {
		img.ImageURL = joinURL(c.basePath, entry.Folder, entry.File)
		return img, nil
	}

	return nil, fmt.Errorf("invalid placeholder entry for id %q: missing imageUrl or file", entry.ID)
}

func (c *ImageCatalog) resolveVariant(folder string, v *rawVariant) *domain.ImageSource {
	if v == nil {
		return nil
	}

	var src string
	switch {
	case v.ImageURL != "":
		src = v.ImageURL
	case v.File != "":
		src = joinURL(c.basePath, folder, v.File)
	default:
		return nil
	}

	return &domain.ImageSource{
		Src:    src,
		Width:  v.Width,
		Height: v.Height,
	}
}

// joinURL joins base, optional folder and file into a single path, trimming
// duplicate slashes and percent-encoding each path segment.
func joinURL(base, folder, file string) string {
	parts := []string{base}
	if folder != "" {
		parts = append(parts, encodeSegments(strings.Trim(folder, "/")))
	}
	parts = append(parts, encodeSegments(strings.TrimLeft(file, "/")))
	return strings.Join(parts, "/")
}

func encodeSegments(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// Get returns the resolved entry for id.
func (c *ImageCatalog) Get(id string) (*domain.ResolvedImage, bool) {
	img, ok := c.byID[id]
	return img, ok
}

// Resolve returns the source for id honoring the variant fallback precedence:
// the requested variant, then the other variant, then the flat source.
func (c *ImageCatalog) Resolve(id string, variant domain.VariantKind) (*domain.ImageSource, error) {
	img, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrImageNotFound, id)
	}

	var first, second *domain.ImageSource
	switch variant {
	case domain.VariantDesktop:
		first, second = img.Desktop, img.Mobile
	case domain.VariantMobile:
		first, second = img.Mobile, img.Desktop
	}

	if first != nil {
		return first, nil
	}
	if second != nil {
		return second, nil
	}
	// Catalog construction guarantees ImageURL is never empty.
	return &domain.ImageSource{Src: img.ImageURL}, nil
}

// Fallback is the generic asset substituted when an id does not resolve.
func (c *ImageCatalog) Fallback() *domain.ImageSource {
	return &domain.ImageSource{Src: c.basePath + "/placeholder.svg"}
}
