// Package render - QR symbol rendering collaborator
package render

import (
	"context"
	"fmt"

	"github.com/alwitt/qrbook/models"
)

// Request parameters of one rendering
type Request struct {
	// Payload the exact string to embed
	Payload string `validate:"required"`
	// ErrorCorrection symbol error correction level
	ErrorCorrection models.ErrorCorrectionENUMType `validate:"required,error_correction"`
	// SizePx output image size in pixels
	SizePx int `validate:"gt=0"`
	// ForegroundHex optional module color, 6 hex digits
	ForegroundHex string `validate:"omitempty,hexadecimal,len=6"`
	// BackgroundHex optional background color, 6 hex digits
	BackgroundHex string `validate:"omitempty,hexadecimal,len=6"`
	// Logo optional image composited over the center of the symbol
	Logo []byte
}

// Renderer turns a payload into a scannable image
type Renderer interface {
	/*
		Render render one QR symbol

			@param ctx context.Context - execution context
			@param request Request - rendering parameters
			@returns the encoded image
	*/
	Render(ctx context.Context, request Request) ([]byte, error)
}

/*
NewRequest define the rendering request of a stored record

	@param record models.QRRecord - the record
	@returns the request
*/
func NewRequest(record models.QRRecord) Request {
	return Request{
		Payload:         record.Payload,
		ErrorCorrection: record.ErrorCorrection,
		SizePx:          record.SizePx,
		ForegroundHex:   record.ForegroundHex,
		BackgroundHex:   record.BackgroundHex,
		Logo:            record.LogoImage,
	}
}

// Validate check the request is renderable
func (r Request) Validate() error {
	validate, err := models.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to define validator [%w]", err)
	}
	if err := validate.Struct(&r); err != nil {
		return fmt.Errorf("invalid render request [%w]", err)
	}
	return nil
}

/*
RenderRecord validate and render a stored record

	@param ctx context.Context - execution context
	@param renderer Renderer - the rendering capability
	@param record models.QRRecord - the record
	@returns the encoded image
*/
func RenderRecord(
	ctx context.Context, renderer Renderer, record models.QRRecord,
) ([]byte, error) {
	request := NewRequest(record)
	if err := request.Validate(); err != nil {
		return nil, err
	}
	image, err := renderer.Render(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to render record '%s' [%w]", record.ID, err)
	}
	return image, nil
}
