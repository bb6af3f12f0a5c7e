package imagecache

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	// Decoders for the icon formats the catalog serves
	_ "image/gif"
	_ "image/jpeg"
)

// Thumbnail bounds: icons are scaled to fit within this box while
// preserving aspect ratio
const (
	MaxIconWidth  = 125
	MaxIconHeight = 125
)

// Cache downloads project icons, downsizes them, and persists them as
// PNG files in the cache directory. There is no staleness check: every
// FetchIcon call re-fetches and overwrites.
type Cache struct {
	cacheDir   string
	httpClient *http.Client
}

// New creates an icon cache rooted at cacheDir
func New(cacheDir string) *Cache {
	return &Cache{
		cacheDir:   cacheDir,
		httpClient: http.DefaultClient,
	}
}

// FetchIcon downloads and caches the icon for a project, returning the
// local file path. Any failure (network, decode, write) returns "" so
// the entry renders without an icon; this never reaches the caller as
// an error.
func (c *Cache) FetchIcon(iconURL, projectID string) string {
	img, err := c.fetchImage(iconURL)
	if err != nil {
		log.Printf("Failed to load icon for project %s: %v", projectID, err)
		return ""
	}

	thumb := fitWithin(img, MaxIconWidth, MaxIconHeight)

	path := filepath.Join(c.cacheDir, fmt.Sprintf("project_%s.png", projectID))
	if err := writePNG(path, thumb); err != nil {
		log.Printf("Failed to cache icon for project %s: %v", projectID, err)
		return ""
	}
	return path
}

// fetchImage downloads and decodes the image at iconURL
func (c *Cache) fetchImage(iconURL string) (image.Image, error) {
	resp, err := c.httpClient.Get(iconURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("icon request failed with status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}
	return img, nil
}

// fitWithin scales img down to fit inside maxW×maxH, preserving aspect
// ratio, with Catmull-Rom resampling. Images already inside the box are
// returned unchanged.
func fitWithin(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// writePNG encodes img to path, overwriting any previous cached icon
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
