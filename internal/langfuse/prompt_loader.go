package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aqualog/hydration-api/internal/log"
)

// PromptLoaderConfig describes where the comment prompt lives: the Langfuse
// prompt registry, with an optional local cache file used when the registry
// is unreachable.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	CachePath   string
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt fetches the comment system prompt from Langfuse so wording can
// be iterated without a redeploy. A fetched prompt is mirrored to CachePath;
// when the fetch fails the cached copy is served instead. Callers keep their
// built-in prompt when this returns an error.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.PromptName == "" {
		return readCachedPrompt(cfg.CachePath)
	}

	prompt, version, err := fetchPrompt(ctx, cfg)
	if err != nil {
		if !errors.Is(err, errLangfuseDisabled) {
			log.Warnf("langfuse: prompt fetch failed: %v", err)
		}
		return readCachedPrompt(cfg.CachePath)
	}

	log.Infow("langfuse: prompt loaded",
		"name", cfg.PromptName,
		"version", version,
		"label", cfg.PromptLabel,
	)
	if err := cachePrompt(cfg.CachePath, prompt); err != nil {
		log.Warnf("langfuse: failed to cache prompt locally: %v", err)
	}
	return prompt, nil
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, int, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", 0, errLangfuseDisabled
	}

	endpoint, err := promptURL(cfg)
	if err != nil {
		return "", 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", 0, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", 0, fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Version int             `json:"version"`
		Type    string          `json:"type"`
		Prompt  json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", 0, fmt.Errorf("decode prompt response: %w", err)
	}

	prompt, err := promptText(payload.Type, payload.Prompt)
	if err != nil {
		return "", 0, err
	}
	return prompt, payload.Version, nil
}

func promptURL(cfg PromptLoaderConfig) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid Langfuse base URL: %w", err)
	}
	endpoint := base.String() + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		endpoint += "?label=" + url.QueryEscape(cfg.PromptLabel)
	}
	return endpoint, nil
}

// promptText extracts a usable system prompt from either prompt shape the
// registry stores. Chat prompts keep only their system messages; the comment
// writer supplies the user turn itself at generation time.
func promptText(kind string, raw json.RawMessage) (string, error) {
	switch kind {
	case "", "text":
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(raw, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}

		var system, all []string
		for _, m := range messages {
			if m.Content == "" {
				continue
			}
			all = append(all, m.Content)
			if m.Role == "system" {
				system = append(system, m.Content)
			}
		}
		if len(system) > 0 {
			return strings.Join(system, "\n\n"), nil
		}
		if len(all) > 0 {
			return strings.Join(all, "\n\n"), nil
		}
		return "", errors.New("chat prompt has no usable messages")
	default:
		return "", fmt.Errorf("unsupported prompt type %q", kind)
	}
}

func readCachedPrompt(path string) (string, error) {
	if path == "" {
		return "", errors.New("no prompt source available")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read cached prompt: %w", err)
	}
	return string(data), nil
}

func cachePrompt(path, prompt string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
