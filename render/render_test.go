package render_test

import (
	"context"
	"errors"
	"testing"

	mockrender "github.com/alwitt/qrbook/mocks/render"
	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRenderRecord(t *testing.T) {
	assert := assert.New(t)

	utCtx := context.Background()
	mockRenderer := mockrender.NewRenderer(t)

	record := models.QRRecord{
		ID:              "c2b1f3b4-5e0d-4f4e-9a43-7c1b1f0f9b11",
		Payload:         "https://example.com",
		ErrorCorrection: models.ErrorCorrectionHigh,
		SizePx:          1024,
		ForegroundHex:   "112233",
	}

	// Case 0: valid record
	{
		mockRenderer.On(
			"Render", mock.AnythingOfType("context.backgroundCtx"), mock.AnythingOfType("render.Request"),
		).Run(func(args mock.Arguments) {
			request := args.Get(1).(render.Request)
			assert.Equal("https://example.com", request.Payload)
			assert.Equal(models.ErrorCorrectionHigh, request.ErrorCorrection)
			assert.Equal(1024, request.SizePx)
			assert.Equal("112233", request.ForegroundHex)
		}).Return([]byte("png"), nil).Once()

		image, err := render.RenderRecord(utCtx, mockRenderer, record)
		assert.Nil(err)
		assert.Equal([]byte("png"), image)
	}

	// Case 1: renderer failure
	{
		mockRenderer.On(
			"Render", mock.AnythingOfType("context.backgroundCtx"), mock.AnythingOfType("render.Request"),
		).Return(nil, errors.New("boom")).Once()

		_, err := render.RenderRecord(utCtx, mockRenderer, record)
		assert.Error(err)
	}

	// Case 2: not renderable, the renderer is not called
	{
		broken := record
		broken.SizePx = 0
		_, err := render.RenderRecord(utCtx, mockRenderer, broken)
		assert.Error(err)

		broken = record
		broken.ErrorCorrection = "Z"
		_, err = render.RenderRecord(utCtx, mockRenderer, broken)
		assert.Error(err)

		broken = record
		broken.BackgroundHex = "white"
		_, err = render.RenderRecord(utCtx, mockRenderer, broken)
		assert.Error(err)
	}
}
