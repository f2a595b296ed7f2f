// Package meshgen wraps the 3D mesh generation sidecar. The sidecar takes a
// weapon description and returns an OBJ mesh; when it is down or slow the
// caller falls back to static placeholder meshes.
package meshgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
)

//go:generate mockgen -destination=mock/mock_client.go -package=meshgenmock github.com/Samer-Gassouma/aeon-generator/internal/clients/meshgen Client

// Mesh generation is slow even on a GPU; give the sidecar room before
// falling back.
const defaultTimeout = 120 * time.Second

// GenerateInput contains parameters for mesh generation
type GenerateInput struct {
	// Description is the full weapon description the mesh should depict
	Description string
}

// GenerateOutput contains the generated mesh
type GenerateOutput struct {
	// OBJ holds the mesh in Wavefront OBJ text form
	OBJ []byte
}

// Client defines the mesh generation operations
type Client interface {
	// Generate produces an OBJ mesh for a weapon description
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the configuration for the HTTP mesh client
type Config struct {
	// BaseURL points at the mesh sidecar, e.g. http://localhost:8084
	BaseURL string

	// Timeout bounds a single generation call. Zero means defaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	return nil
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// New creates a mesh generation client against the HTTP sidecar
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		http:    client,
	}, nil
}

var _ Client = (*httpClient)(nil)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

func (c *httpClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Description == "" {
		return nil, errors.InvalidArgument("description cannot be empty")
	}

	body, err := json.Marshal(generateRequest{Prompt: input.Description})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "mesh backend unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.WrapWithCode(
			fmt.Errorf("status %d", resp.StatusCode),
			errors.CodeUnavailable, "mesh backend rejected request")
	}

	obj, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mesh response")
	}
	if len(obj) == 0 {
		return nil, errors.Internal("mesh backend returned an empty mesh")
	}

	return &GenerateOutput{OBJ: obj}, nil
}
