package routes

import (
	"ImageTagger/config/environment"
	"ImageTagger/middleware"
	"ImageTagger/mocks"
	"ImageTagger/models"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockImageDescriber) {
	t.Helper()
	ctrl := gomock.NewController(t)
	describer := mocks.NewMockImageDescriber(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(log, environment.Config{MaxUploadBytes: 1 << 20}, describer), describer
}

func TestNewRouter(t *testing.T) {
	t.Run("Liveness", func(t *testing.T) {
		req := require.New(t)
		r, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		req.Equal(http.StatusOK, rec.Code)
		req.Equal("Servidor de OpenAI Backend funcionando.", rec.Body.String())
		req.NotEmpty(rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Generate", func(t *testing.T) {
		req := require.New(t)
		r, describer := newTestRouter(t)
		describer.EXPECT().DescribeImage(gomock.Any(), gomock.Any()).
			Return(&models.ExtractionResult{Description: "x", Tags: []string{"a", "b"}}, nil)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("image", "photo.jpg")
		req.NoError(err)
		_, err = part.Write([]byte("jpeg-bytes"))
		req.NoError(err)
		req.NoError(writer.Close())

		httpReq := httptest.NewRequest(http.MethodPost, "/generate", body)
		httpReq.Header.Set("Content-Type", writer.FormDataContentType())
		httpReq.Header.Set("Origin", "http://frontend.test")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httpReq)

		req.Equal(http.StatusOK, rec.Code)
		req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
		req.JSONEq(`{"description":"x","tags":["a","b"]}`, rec.Body.String())
	})

	t.Run("Generate without image", func(t *testing.T) {
		req := require.New(t)
		r, _ := newTestRouter(t)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		req.NoError(writer.WriteField("note", "no file here"))
		req.NoError(writer.Close())

		httpReq := httptest.NewRequest(http.MethodPost, "/generate", body)
		httpReq.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httpReq)

		req.Equal(http.StatusBadRequest, rec.Code)
		var got models.ErrorBody
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		req.Equal("La imagen es requerida.", got.Error)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := require.New(t)
		r, _ := newTestRouter(t)

		httpReq := httptest.NewRequest(http.MethodOptions, "/generate", nil)
		httpReq.Header.Set("Origin", "http://frontend.test")
		httpReq.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httpReq)

		req.Equal(http.StatusNoContent, rec.Code)
		req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
