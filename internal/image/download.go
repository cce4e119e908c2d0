package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/youruser/featuregen/internal/util"
	_ "golang.org/x/image/webp"
)

// Fetch defaults.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultMaxRedirects = 5
	maxImageBytes       = 20 << 20
	fetchUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// MaxImagePixels caps decoded background size. The header is checked before
// any pixel buffer is allocated.
const MaxImagePixels = 40_000_000

// Fetcher downloads caller-supplied background images.
type Fetcher struct {
	client *http.Client
}

// NewFetcher wraps client. A nil client gets the default timeout and
// redirect limit.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = util.NewHTTPClient(DefaultFetchTimeout, DefaultMaxRedirects)
	}
	return &Fetcher{client: client}
}

// DownloadImage fetches and decodes the image at rawURL. Any non-2xx
// terminal response, transport error or undecodable body is an
// ErrBackgroundFetch.
func (f *Fetcher) DownloadImage(ctx context.Context, rawURL string) (image.Image, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid url %q", ErrBackgroundFetch, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "image/*,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned HTTP %d", ErrBackgroundFetch, u.Redacted(), resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrBackgroundFetch, err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("%w: image too large: over %d bytes", ErrBackgroundFetch, maxImageBytes)
	}
	return decodeImage(body)
}

// DecodeBase64Image decodes inline image data, with or without a
// "data:<mime>;base64," prefix.
func DecodeBase64Image(data string) (image.Image, error) {
	data = strings.TrimSpace(data)
	if strings.HasPrefix(data, "data:") {
		i := strings.Index(data, ",")
		if i < 0 {
			return nil, fmt.Errorf("%w: malformed data url", ErrBackgroundFetch)
		}
		data = data[i+1:]
	}
	data = strings.Join(strings.Fields(data), "")
	if len(data) > base64.StdEncoding.EncodedLen(maxImageBytes) {
		return nil, fmt.Errorf("%w: image too large: over %d bytes", ErrBackgroundFetch, maxImageBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64: %v", ErrBackgroundFetch, err)
		}
	}
	return decodeImage(raw)
}

// decodeImage reads the image header first and refuses anything above
// MaxImagePixels, then decodes with EXIF orientation applied.
func decodeImage(raw []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrBackgroundFetch, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrBackgroundFetch)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: image too large: %dx%d", ErrBackgroundFetch, cfg.Width, cfg.Height)
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrBackgroundFetch, err)
	}
	return img, nil
}

// requestBackground resolves the caller's background: inline data first,
// then the URL. It returns nil when the request supplies neither.
func (f *Fetcher) requestBackground(ctx context.Context, req Request) (image.Image, error) {
	switch {
	case strings.TrimSpace(req.BgImageBase64) != "":
		return DecodeBase64Image(req.BgImageBase64)
	case strings.TrimSpace(req.BgImageURL) != "":
		return f.DownloadImage(ctx, req.BgImageURL)
	default:
		return nil, nil
	}
}
