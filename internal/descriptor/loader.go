package descriptor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Loader fetches and decodes a Connect descriptor over HTTP.
type Loader struct {
	httpClient *http.Client
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables fetch logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// Fetch downloads the descriptor at url and decodes it. Any transport,
// decode, or identity-field failure is fatal to the run: without a
// structurally valid descriptor there is nothing to convert.
func (l *Loader) Fetch(ctx context.Context, url string) (*Descriptor, error) {
	l.logger.Info("Downloading descriptor", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build descriptor request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download descriptor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("descriptor download returned %d: %s", resp.StatusCode, string(body))
	}

	var desc Descriptor
	if err := json.NewDecoder(resp.Body).Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	if err := l.validate.Struct(&desc); err != nil {
		return nil, fmt.Errorf("descriptor is missing required identity fields: %w", err)
	}

	l.logger.Debug("Descriptor decoded",
		zap.String("key", desc.Key),
		zap.Int("scopes", len(desc.Scopes)),
		zap.Int("modules", len(desc.Modules)))

	return &desc, nil
}
