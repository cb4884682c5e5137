//go:generate go run go.uber.org/mock/mockgen -source=image_controller.go -destination=../mocks/mock_image_describer.go -package=mocks
package controllers

import (
	"ImageTagger/models"
	"ImageTagger/utils"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgImageRequired  = "La imagen es requerida."
	MsgImageTooLarge  = "La imagen excede el tamaño máximo permitido."
	MsgGenerateFailed = "Error al generar descripción y tags."

	imageField = "image"

	// room for the multipart boundaries and part headers around the file
	multipartOverhead = 64 << 10
)

// ImageDescriber turns an uploaded image into a description and tags
type ImageDescriber interface {
	DescribeImage(ctx context.Context, image models.UploadedImage) (*models.ExtractionResult, error)
}

type ImageController struct {
	Describer      ImageDescriber
	MaxUploadBytes int64
}

func NewImageController(describer ImageDescriber, maxUploadBytes int64) *ImageController {
	return &ImageController{
		Describer:      describer,
		MaxUploadBytes: maxUploadBytes,
	}
}

// Generate handles POST /generate with a multipart "image" file.
func (ic *ImageController) Generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ic.MaxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile(imageField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			_ = c.Error(utils.WrapError(http.StatusRequestEntityTooLarge, MsgImageTooLarge, err))
			return
		}
		_ = c.Error(utils.WrapError(http.StatusBadRequest, MsgImageRequired, err))
		return
	}

	if fileHeader.Size == 0 {
		_ = c.Error(utils.NewCustomError(http.StatusBadRequest, MsgImageRequired))
		return
	}
	if fileHeader.Size > ic.MaxUploadBytes {
		_ = c.Error(utils.NewCustomError(http.StatusRequestEntityTooLarge, MsgImageTooLarge))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(utils.WrapError(http.StatusInternalServerError, MsgGenerateFailed, err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		_ = c.Error(utils.WrapError(http.StatusInternalServerError, MsgGenerateFailed, err))
		return
	}

	image := models.UploadedImage{
		Filename:  fileHeader.Filename,
		MediaType: fileHeader.Header.Get("Content-Type"),
		Data:      data,
	}

	// The provider call outlives a dropped client connection.
	result, err := ic.Describer.DescribeImage(context.WithoutCancel(c.Request.Context()), image)
	if err != nil {
		_ = c.Error(utils.WrapError(http.StatusInternalServerError, MsgGenerateFailed, err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
