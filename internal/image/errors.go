package imagepkg

import "errors"

// Error kinds surfaced to callers. Match with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrBackgroundFetch = errors.New("background fetch error")
	// ErrTemplateAsset is logged and recovered inside the background stage;
	// it never reaches callers.
	ErrTemplateAsset = errors.New("template asset error")
)

// Kind names for API responses.
const (
	KindValidation      = "ValidationError"
	KindBackgroundFetch = "BackgroundFetchError"
	KindTemplateAsset   = "TemplateAssetError"
	KindInternal        = "InternalError"
)

// KindOf maps an error returned by Render to its kind name.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrBackgroundFetch):
		return KindBackgroundFetch
	case errors.Is(err, ErrTemplateAsset):
		return KindTemplateAsset
	default:
		return KindInternal
	}
}
