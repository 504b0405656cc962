package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

func errUnknownTrackKind(kind ports.TrackKind) error {
	return uierrors.NewValidationError("kind", fmt.Sprintf("unknown track kind %q", kind), nil)
}

var (
	errMissingControl = uierrors.NewValidationError("control", "settings item needs a control", nil)
	errMissingPanel   = uierrors.NewValidationError("panel", "a settings panel is required", nil)
	errMissingPage    = uierrors.NewValidationError("page", "a target page is required", nil)
	errNoPages        = uierrors.NewValidationError("pages", "settings panel needs at least one page", nil)
	errMissingOverlay = uierrors.NewValidationError("overlay", "a subtitle overlay is required", nil)
	errMissingManager = uierrors.NewValidationError("settingsManager", "a subtitle settings manager is required", nil)
)

func errUnknownProperty(name string) error {
	return uierrors.NewValidationError("property", fmt.Sprintf("unknown subtitle property %q", name), nil)
}
