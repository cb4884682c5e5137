package services

import (
	"ImageTagger/config/environment"
	"ImageTagger/models"
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	describeModel       = openai.GPT4oMini
	describeMaxTokens   = 300
	describeTemperature = 0.7

	describePrompt = "¿Qué hay en esta imagen? Responde en el siguiente formato:\nDescripción: [Tu descripción aquí]\nTags: [etiqueta1, etiqueta2, etiqueta3]"
)

// OpenAIService describes and tags images with the OpenAI chat-completions API
type OpenAIService struct {
	client *openai.Client
}

// NewOpenAIService creates a new instance of OpenAIService
func NewOpenAIService(cfg environment.Config) *OpenAIService {
	clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")
	// A zero timeout leaves the call unbounded.
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.OpenAITimeout}

	return &OpenAIService{
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// DescribeImage sends the image to the model once and parses its reply.
// Errors wrap ErrExternalCall or ErrParse.
func (s *OpenAIService) DescribeImage(ctx context.Context, image models.UploadedImage) (*models.ExtractionResult, error) {
	dataURI := EncodeDataURI(image.Data, ResolveMediaType(image.MediaType, image.Data))

	reply, err := s.complete(ctx, dataURI)
	if err != nil {
		return nil, err
	}

	return ParseReply(reply)
}

func (s *OpenAIService) complete(ctx context.Context, dataURI string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: describeModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: describePrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURI}},
				},
			},
		},
		MaxTokens:   describeMaxTokens,
		Temperature: describeTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExternalCall, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response %s", ErrExternalCall, resp.ID)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
