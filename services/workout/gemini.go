// Package workoutsvc generates training plans through the Gemini REST API.
package workoutsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
)

const geminiHost = "https://generativelanguage.googleapis.com"

type geminiService struct {
	key    string
	model  string
	client *http.Client
	logger core.Logger
}

var _ core.PlanGenerator = (*geminiService)(nil)

func NewGeminiService(logger core.Logger) *geminiService {
	return &geminiService{
		key:    core.Conf.Gemini.APIKey,
		model:  core.Conf.Gemini.Model,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

type (
	generateRequest struct {
		Contents []content `json:"contents"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

func (svc *geminiService) GeneratePlan(ctx context.Context, studentName, goal string) (string, error) {
	prompt := fmt.Sprintf(
		"Act as an experienced personal trainer. Write a weekly workout plan for a gym student "+
			"named %s whose main goal is: %s. Split the plan by day, list exercises with sets and "+
			"reps, and keep it practical for a commercial gym. Answer in plain text.",
		studentName, goal,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "serializing plan request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", geminiHost, svc.model, svc.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "preparing plan request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling plan generator")
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return "", errors.Errorf("plan generator returned status %d", res.StatusCode)
	}

	var payload generateResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "decoding plan response")
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("plan generator returned no candidates")
	}
	return payload.Candidates[0].Content.Parts[0].Text, nil
}
