// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/alquimia/backend/internal/application/adapter"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// GeminiService implements the adapter.AdvisorService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini advisor service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GetDailyTip generates a short financial tip grounded in the snapshot.
func (s *GeminiService) GetDailyTip(ctx context.Context, snapshot adapter.SpendingSnapshot) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAdvisoryServiceUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	prompt := s.buildTipPrompt(snapshot)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	tip := strings.TrimSpace(extractText(resp))
	if tip == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return tip, nil
}

// GetPromotions generates current bank promotion summaries.
func (s *GeminiService) GetPromotions(ctx context.Context) ([]adapter.Promotion, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAdvisoryServiceUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.5)
	model.ResponseMIMEType = "application/json"

	prompt := `Eres un asesor financiero personal en español. Lista promociones bancarias
típicas vigentes este mes (descuentos con tarjeta, meses sin intereses, cashback).

Responde con un array JSON. Cada promoción debe tener:
{ "title": "string", "description": "string breve", "bank": "string" }

Devuelve entre 3 y 5 promociones. Solo el array JSON, sin texto adicional.`

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	textContent := cleanJSON(extractText(resp))
	if textContent == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var promotions []adapter.Promotion
	if err := json.Unmarshal([]byte(textContent), &promotions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return promotions, nil
}

// geminiReceipt represents the raw receipt response from Gemini.
type geminiReceipt struct {
	Merchant string `json:"merchant"`
	Total    string `json:"total"`
	Items    []struct {
		Description string `json:"description"`
		Amount      string `json:"amount"`
	} `json:"items"`
}

// ParseReceipt interprets a receipt image into structured line items.
func (s *GeminiService) ParseReceipt(ctx context.Context, imageData []byte, mimeType string) (*adapter.ParsedReceipt, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAdvisoryServiceUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := `Analiza esta imagen de un ticket o recibo de compra.

Responde con un objeto JSON:
{
  "merchant": "nombre del comercio",
  "total": "monto total como string decimal, ej. \"123.45\"",
  "items": [ { "description": "string", "amount": "string decimal" } ]
}

Los montos siempre positivos con punto decimal. Si un dato no es legible,
omite el item. Solo el objeto JSON, sin texto adicional.`

	format := strings.TrimPrefix(mimeType, "image/")
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, imageData),
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	textContent := cleanJSON(extractText(resp))
	if textContent == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var raw geminiReceipt
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	total, err := decimal.NewFromString(raw.Total)
	if err != nil {
		total = decimal.Zero
	}

	parsed := &adapter.ParsedReceipt{
		Merchant: raw.Merchant,
		Total:    total,
		Items:    make([]adapter.ReceiptItem, 0, len(raw.Items)),
	}
	for _, item := range raw.Items {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil || amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		parsed.Items = append(parsed.Items, adapter.ReceiptItem{
			Description: item.Description,
			Amount:      amount,
		})
	}

	if parsed.Total.IsZero() && len(parsed.Items) > 0 {
		for _, item := range parsed.Items {
			parsed.Total = parsed.Total.Add(item.Amount)
		}
	}

	return parsed, nil
}

// buildTipPrompt creates the daily tip prompt for Gemini.
func (s *GeminiService) buildTipPrompt(snapshot adapter.SpendingSnapshot) string {
	var sb strings.Builder

	sb.WriteString(`Eres un asesor financiero personal en español. Genera UN consejo breve
(máximo 2 frases) y accionable basado en la actividad del mes del usuario.
No uses saludos ni despedidas, solo el consejo.

ACTIVIDAD DEL MES:
`)
	sb.WriteString(fmt.Sprintf("- Ingresos: %s\n", snapshot.MonthIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Gastos: %s\n", snapshot.MonthExpenses.StringFixed(2)))
	if snapshot.TopListName != "" {
		sb.WriteString(fmt.Sprintf("- Mayor gasto en: %s (%s)\n",
			snapshot.TopListName, snapshot.TopListAmount.StringFixed(2)))
	}
	if snapshot.DominantElement != "" {
		sb.WriteString(fmt.Sprintf("- Elemento dominante: %s\n", snapshot.DominantElement))
	}

	return sb.String()
}

// extractText pulls the text content out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

// cleanJSON strips markdown code fences Gemini sometimes wraps JSON in.
func cleanJSON(textContent string) string {
	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent)
}
