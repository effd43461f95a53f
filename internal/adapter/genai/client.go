package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

const maxSuggestedTasks = 6

// Client calls a hosted generative text model over its REST generateContent
// endpoint. Model output is untrusted: responses are parsed defensively and
// truncated, and callers already treat every error as "no suggestions".
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
	now     func() time.Time
}

var _ ports.GenerativeProvider = (*Client)(nil)

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		now: time.Now,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   *genConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type suggestedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c *Client) SuggestTasks(ctx context.Context, plants []domain.Plant, locale domain.Locale) ([]domain.TaskSuggestion, error) {
	type plantSummary struct {
		Name         string  `json:"name"`
		Area         string  `json:"type"`
		WateringFreq int     `json:"watering_freq"`
		LastWatered  *string `json:"last_watered"`
	}

	summaries := make([]plantSummary, 0, len(plants))
	for _, p := range plants {
		s := plantSummary{Name: p.Name, Area: string(domain.PlantAreaHorta), WateringFreq: p.WateringFreq}
		if p.Area != nil {
			s.Area = string(*p.Area)
		}
		if p.LastWatered != nil {
			value := p.LastWatered.Format(time.DateOnly)
			s.LastWatered = &value
		}
		summaries = append(summaries, s)
	}
	plantsJSON, err := json.Marshal(summaries)
	if err != nil {
		return nil, err
	}

	localeName := "Portugues (Portugal)"
	language := "Portuguese"
	if locale == domain.LocaleEN {
		localeName = "English (United States)"
		language = "US English"
	}

	prompt := fmt.Sprintf(`You are an expert kitchen garden/orchard assistant. Output strictly and only a compact JSON array of tasks.
Each task has: {"title": string, "description": string} in the requested locale. Avoid extra fields or commentary.
Locale: %s
Today: %s
Plants: %s

Generate at most %d actionable tasks for the next 7 days. Include watering due items and 1-2 seasonal care tasks (fertilize, prune, mulch) when appropriate. Keep titles <= 60 chars. Use natural %s suitable for a gardening app.`,
		localeName, c.now().Format(time.DateOnly), plantsJSON, maxSuggestedTasks, language)

	text, err := c.generate(ctx, prompt, "application/json")
	if err != nil {
		return nil, err
	}

	var tasks []suggestedTask
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &tasks); err != nil {
		return nil, fmt.Errorf("unparseable model response: %w", err)
	}

	suggestions := make([]domain.TaskSuggestion, 0, len(tasks))
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		suggestions = append(suggestions, domain.TaskSuggestion{
			Title:       t.Title,
			Description: t.Description,
		})
		if len(suggestions) == maxSuggestedTasks {
			break
		}
	}
	return suggestions, nil
}

var firstIntPattern = regexp.MustCompile(`\d+`)

func (c *Client) EstimateWateringFreq(ctx context.Context, name, species string) (int, error) {
	prompt := fmt.Sprintf(`Estima a frequência ideal de rega (em dias) para a planta seguinte.

Nome comum: %s
Espécie: %s

Responde apenas com um número inteiro que represente o intervalo médio de rega (em dias),
sem texto adicional, sem unidades, apenas o número.`, name, species)

	text, err := c.generate(ctx, prompt, "text/plain")
	if err != nil {
		return 0, err
	}

	match := firstIntPattern.FindString(text)
	if match == "" {
		return domain.DefaultWateringFreq, nil
	}
	freq, err := strconv.Atoi(match)
	if err != nil {
		return domain.DefaultWateringFreq, nil
	}
	return domain.NormalizeWateringFreq(&freq), nil
}

func (c *Client) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config:   &genConfig{ResponseMimeType: mimeType},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model endpoint returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}

// stripCodeFence unwraps ```json fenced blocks some models emit despite the
// JSON mime type.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
