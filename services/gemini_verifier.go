package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smarthospital/cleantrack/utils"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

const classifyPrompt = `You are inspecting a hospital room after cleaning.
Analyze the photo and reply with ONLY a JSON object of the form
{"status": "Clean" or "NotClean", "remarks": "<short explanation>"}.`

// geminiRequest adalah body request generateContent.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiVerifier memanggil Gemini vision API untuk klasifikasi kebersihan ruangan.
type GeminiVerifier struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewGeminiVerifier membuat client verifier dengan timeout eksternal.
// Pipeline tidak memberlakukan timeout internal; batas waktu ada di client HTTP.
func NewGeminiVerifier(baseURL, apiKey, model string) *GeminiVerifier {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if model == "" {
		model = "gemini-flash-latest"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GeminiVerifier{
		httpClient: client,
		apiKey:     apiKey,
		model:      model,
	}
}

// Classify mengirim foto ke Gemini dan mem-parse jawaban JSON dari model.
func (g *GeminiVerifier) Classify(ctx context.Context, imageBytes []byte) (*Classification, error) {
	request := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: classifyPrompt},
				{InlineData: &geminiInlineData{
					MimeType: "image/jpeg",
					Data:     base64.StdEncoding.EncodeToString(imageBytes),
				}},
			},
		}},
	}

	var response geminiResponse
	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(request).
		SetResult(&response).
		SetError(&response).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))

	if err != nil {
		utils.ErrorLogger.Printf("Gemini API call failed: %v", err)
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("Gemini API error: %s (code %d)", response.Error.Message, response.Error.Code)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("Gemini API returned status %d", resp.StatusCode())
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("Gemini API returned no candidates")
	}

	text := response.Candidates[0].Content.Parts[0].Text
	result, err := parseClassification(text)
	if err != nil {
		return nil, fmt.Errorf("unexpected Gemini reply %q: %w", text, err)
	}

	utils.InfoLogger.Printf("Gemini classification: status=%s", result.Status)
	return result, nil
}

// parseClassification mengambil objek JSON dari teks jawaban model.
// Model kadang membungkus JSON dengan markdown code fence.
func parseClassification(text string) (*Classification, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var result Classification
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, err
	}
	if result.Status == "" {
		return nil, fmt.Errorf("missing status field")
	}
	return &result, nil
}
