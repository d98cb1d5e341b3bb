// Package gemini implements promptaudit.Analyzer using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the default judge model. gemini-2.0-flash is the
// fast/cheap tier, which is plenty for a ten-rule rubric check.
const DefaultModel = "gemini-2.0-flash"

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

// Content represents a message in a Gemini conversation.
type Content struct {
	Parts []*Part
}

// Part represents a part of a message.
type Part struct {
	Text string
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	SystemInstruction *Content
	Temperature       *float32
	ResponseMIMEType  string
	ResponseSchema    *Schema
}

// Schema represents the structure for controlled JSON generation.
type Schema struct {
	Type       string             // object, array, string, integer, number, boolean
	Properties map[string]*Schema // For object types
	Items      *Schema            // For array types
	Required   []string           // Required property names
}

// GenerateContentResponse holds the response from content generation.
type GenerateContentResponse struct {
	Text string
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client wraps the Gemini genai.Client.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Client with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// GenerateContent implements GenerativeClient by delegating to the genai.Client.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	genaiContents := make([]*genai.Content, len(contents))
	for i, content := range contents {
		parts := make([]*genai.Part, len(content.Parts))
		for j, part := range content.Parts {
			parts[j] = &genai.Part{Text: part.Text}
		}
		genaiContents[i] = &genai.Content{Parts: parts}
	}

	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: config.ResponseMIMEType,
	}
	if config.Temperature != nil {
		genaiConfig.Temperature = config.Temperature
	}
	if config.SystemInstruction != nil {
		parts := make([]*genai.Part, len(config.SystemInstruction.Parts))
		for i, part := range config.SystemInstruction.Parts {
			parts[i] = &genai.Part{Text: part.Text}
		}
		genaiConfig.SystemInstruction = &genai.Content{Parts: parts}
	}
	if config.ResponseSchema != nil {
		genaiConfig.ResponseSchema = convertSchema(config.ResponseSchema)
	}

	result, err := c.client.Models.GenerateContent(ctx, model, genaiContents, genaiConfig)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	return &GenerateContentResponse{Text: result.Text()}, nil
}

// wrapAPIError converts genai.APIError to our APIError type so the
// analyzer can classify provider failures by status code.
func wrapAPIError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.Code,
			Message:    fmt.Sprintf("gemini API error (HTTP %d): %s", apiErr.Code, apiErr.Message),
		}
	}
	return err
}

// convertSchema recursively converts our Schema to genai.Schema.
func convertSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	gs := &genai.Schema{
		Type:     genai.Type(s.Type),
		Required: s.Required,
	}
	if s.Properties != nil {
		gs.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			gs.Properties[k] = convertSchema(v)
		}
	}
	if s.Items != nil {
		gs.Items = convertSchema(s.Items)
	}
	return gs
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	return m.GenerateContentFn(ctx, model, contents, config)
}

// Compile-time check that Client implements GenerativeClient.
var _ GenerativeClient = (*Client)(nil)
