// Package secrets resolves upstream API keys at request time.
//
// Priority order for every key:
//  1. Environment variable
//  2. SSM Parameter Store (when a client is configured)
//
// A missing key is a configuration error surfaced to the caller as
// ErrNotConfigured — it is detected when a request first needs the key,
// not at startup, so a partially configured deployment can still serve
// the endpoints that do not depend on it.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ErrNotConfigured indicates a required API key is absent from both the
// environment and SSM.
var ErrNotConfigured = errors.New("API key not configured")

// Well-known keys consumed by the product-search pipeline.
const (
	RoboflowKey = "roboflow"
	SerpKey     = "serpapi"
	GeminiKey   = "gemini"
)

// envVars maps key names to their environment variable.
var envVars = map[string]string{
	RoboflowKey: "ROBOFLOW_API_KEY",
	SerpKey:     "SERPAPI_API_KEY",
	GeminiKey:   "GEMINI_API_KEY",
}

// ssmParams maps key names to their default SSM parameter path. Each path
// can be overridden with <ENV_VAR>_SSM_PARAM.
var ssmParams = map[string]string{
	RoboflowKey: "/stylematch/prod/roboflow-api-key",
	SerpKey:     "/stylematch/prod/serpapi-api-key",
	GeminiKey:   "/stylematch/prod/gemini-api-key",
}

// Source resolves API keys. Safe for concurrent use. A nil SSM client
// disables the Parameter Store fallback.
type Source struct {
	ssm *ssm.Client

	mu    sync.Mutex
	cache map[string]string
}

// NewSource creates a Source. ssmClient may be nil.
func NewSource(ssmClient *ssm.Client) *Source {
	return &Source{
		ssm:   ssmClient,
		cache: make(map[string]string),
	}
}

// Get resolves the named key (RoboflowKey, SerpKey, GeminiKey).
func (s *Source) Get(ctx context.Context, name string) (string, error) {
	envVar, ok := envVars[name]
	if !ok {
		return "", fmt.Errorf("unknown secret %q", name)
	}

	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	s.mu.Lock()
	cached := s.cache[name]
	s.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	if s.ssm == nil {
		return "", fmt.Errorf("%s not set: %w", envVar, ErrNotConfigured)
	}

	param := ssmParams[name]
	if override := os.Getenv(envVar + "_SSM_PARAM"); override != "" {
		param = override
	}

	result, err := s.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &param,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		log.Warn().Err(err).Str("param", param).Msg("SSM parameter lookup failed")
		return "", fmt.Errorf("%s not set and SSM lookup of %s failed: %w", envVar, param, ErrNotConfigured)
	}
	if result.Parameter == nil || result.Parameter.Value == nil || *result.Parameter.Value == "" {
		return "", fmt.Errorf("%s not set and SSM parameter %s empty: %w", envVar, param, ErrNotConfigured)
	}

	value := *result.Parameter.Value
	s.mu.Lock()
	s.cache[name] = value
	s.mu.Unlock()
	log.Debug().Str("param", param).Msg("API key loaded from SSM")
	return value, nil
}

// KeyFunc returns a function bound to one named key, suitable for handing to
// an upstream client that resolves its credential per call.
func (s *Source) KeyFunc(name string) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		return s.Get(ctx, name)
	}
}
