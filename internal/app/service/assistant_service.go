package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/digimarketpro/digimarket-backend/config"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

// ErrSuperseded marks a reply whose session already sent a newer question
var ErrSuperseded = errors.New("assistant reply superseded")

// Canned assistant replies for degraded situations
const (
	replyMissingKey   = "I'm sorry, my brain (API Key) is missing. Please check the app configuration."
	replyNoAnswer     = "I'm not sure how to answer that right now."
	replyProviderDown = "I'm having trouble connecting to the server. Please try again later."
)

// AssistantService answers shopper questions with product recommendations
// drawn from the live inventory. Each session carries a generation counter;
// when a newer question arrives before the previous reply lands, the stale
// reply is discarded instead of being shown out of order.
type AssistantService interface {
	Greeting(ctx context.Context) string
	Ask(ctx context.Context, sessionID, message string) (string, error)
}

type assistantService struct {
	cfg          config.AssistantConfig
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	httpClient   *http.Client

	mu          sync.Mutex
	generations map[string]uint64
}

func NewAssistantService(
	cfg config.AssistantConfig,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
) AssistantService {
	return &assistantService{
		cfg:          cfg,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		generations:  make(map[string]uint64),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (s *assistantService) Greeting(ctx context.Context) string {
	settings := s.settingsRepo.Get(ctx)
	return fmt.Sprintf("Hi! I'm your Digital Assistant for %s. Looking for a specific plugin or need a recommendation?", settings.StoreName)
}

func (s *assistantService) Ask(ctx context.Context, sessionID, message string) (string, error) {
	generation := s.nextGeneration(sessionID)

	logger.Info("Assistant question received", map[string]interface{}{
		"session_id": sessionID,
		"generation": generation,
	})

	if s.cfg.APIKey == "" {
		return replyMissingKey, nil
	}

	reply, err := s.callProvider(ctx, message)
	if err != nil {
		logger.Error("Assistant provider call failed", err, map[string]interface{}{
			"session_id": sessionID,
		})
		reply = replyProviderDown
	}

	if s.currentGeneration(sessionID) != generation {
		logger.Debug("Discarding stale assistant reply", map[string]interface{}{
			"session_id": sessionID,
			"generation": generation,
		})
		return "", ErrSuperseded
	}
	return reply, nil
}

func (s *assistantService) nextGeneration(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[sessionID]++
	return s.generations[sessionID]
}

func (s *assistantService) currentGeneration(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[sessionID]
}

// systemInstruction pins the assistant to the current inventory. An admin
// can replace the whole instruction through settings; the inventory block
// is appended either way.
func (s *assistantService) systemInstruction(ctx context.Context) string {
	settings := s.settingsRepo.Get(ctx)

	type inventoryItem struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
	}
	products := s.productRepo.List(ctx)
	items := make([]inventoryItem, len(products))
	for i, p := range products {
		items[i] = inventoryItem{Name: p.Name, Price: p.Price, Category: p.Category}
	}
	inventory, _ := json.Marshal(items)

	var b strings.Builder
	if settings.AISystemInstruction != "" {
		b.WriteString(settings.AISystemInstruction)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "You are a knowledgeable and helpful digital sales assistant for '%s'.\n", settings.StoreName)
		b.WriteString("Your goal is to help customers find the right WordPress plugins and tools from our specific inventory.\n")
	}
	b.WriteString("Here is the available product inventory (JSON format):\n")
	b.Write(inventory)
	b.WriteString("\n\nRules:\n")
	b.WriteString("1. ONLY recommend products that are in the inventory list above.\n")
	b.WriteString("2. If a user asks for a product we don't have, suggest a similar alternative from our inventory if one exists, otherwise politely say we don't carry it.\n")
	b.WriteString("3. Keep responses concise, friendly, and focused on sales.\n")
	b.WriteString("4. Mention the price when recommending a product.\n")
	b.WriteString("5. If the user asks general WordPress questions, you can answer them but try to tie it back to a product we sell.\n")
	b.WriteString("6. Do not invent products.\n")
	return b.String()
}

func (s *assistantService) callProvider(ctx context.Context, message string) (string, error) {
	reqData := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: s.systemInstruction(ctx)},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("provider error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return replyNoAnswer, nil
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return replyNoAnswer, nil
	}
	return content, nil
}
