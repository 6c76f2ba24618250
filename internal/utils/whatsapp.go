package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/logging"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/utils/httpclient"
)

type textPayload struct {
	Body string `json:"body"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templatePayload struct {
	Name       string                   `json:"name"`
	Language   templateLanguage         `json:"language"`
	Components []map[string]interface{} `json:"components,omitempty"`
}

// messageRequest is the WhatsApp Cloud API message envelope
type messageRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	RecipientType    string           `json:"recipient_type"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             *textPayload     `json:"text,omitempty"`
	Template         *templatePayload `json:"template,omitempty"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendWhatsAppText sends a plain text message to a canonical phone number
func SendWhatsAppText(ctx context.Context, phone, body string) error {
	return sendWhatsAppMessage(ctx, messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               phone,
		Type:             "text",
		Text:             &textPayload{Body: body},
	})
}

// SendWhatsAppTemplate sends a pre-approved template message
func SendWhatsAppTemplate(ctx context.Context, phone, name, languageCode string, components []map[string]interface{}) error {
	return sendWhatsAppMessage(ctx, messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               phone,
		Type:             "template",
		Template: &templatePayload{
			Name:       name,
			Language:   templateLanguage{Code: languageCode},
			Components: components,
		},
	})
}

// verificationTemplateComponents fills the single body parameter of a
// pre-approved verification template with the code
func verificationTemplateComponents(code string) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"type": "body",
			"parameters": []map[string]interface{}{
				{"type": "text", "text": code},
			},
		},
	}
}

// SendVerificationCode delivers a phone verification code over WhatsApp.
// With a configured template name the code goes out as a template
// message (deliverable outside the 24h session window); otherwise as
// plain text.
func SendVerificationCode(ctx context.Context, phone, code string) error {
	if name := config.AppConfig.WhatsAppTemplateName; name != "" {
		return SendWhatsAppTemplate(ctx, phone, name, "pt_BR", verificationTemplateComponents(code))
	}

	body := fmt.Sprintf(
		"Seu código de verificação é: *%s*\n\n"+
			"Este código expira em 5 minutos.\n\n"+
			"Se você não solicitou este código, ignore esta mensagem.",
		code,
	)
	return SendWhatsAppText(ctx, phone, body)
}

func sendWhatsAppMessage(ctx context.Context, msg messageRequest) error {
	logger := logging.Logger.With(
		zap.String("phone", observability.MaskPhone(msg.To)),
		zap.String("message_type", msg.Type),
	)

	if !config.AppConfig.WhatsAppEnabled {
		logger.Info("WhatsApp messaging is disabled, skipping message send")
		return nil
	}

	if err := ValidateCanonicalPhone(msg.To); err != nil {
		logger.Error("invalid phone number", zap.Error(err))
		return err
	}

	jsonBody, err := json.Marshal(msg)
	if err != nil {
		logger.Error("failed to marshal message request", zap.Error(err))
		return fmt.Errorf("failed to marshal message request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages",
		config.AppConfig.WhatsAppBaseURL,
		config.AppConfig.WhatsAppPhoneNumberID,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		logger.Error("failed to create message request", zap.Error(err))
		return fmt.Errorf("failed to create message request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+config.AppConfig.WhatsAppAccessToken)
	req.Header.Set("Content-Type", "application/json")

	client := httpclient.GetGlobalPool().Get()
	defer httpclient.GetGlobalPool().Put(client)

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("failed to send message request", zap.Error(err))
		return fmt.Errorf("failed to send message request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("failed to read response body", zap.Error(err))
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			logger.Error("message request failed",
				zap.Int("status_code", resp.StatusCode),
				zap.String("error_type", errResp.Error.Type),
				zap.String("error_message", errResp.Error.Message))
			return fmt.Errorf("message request failed: %s", errResp.Error.Message)
		}
		logger.Error("message request failed", zap.Int("status_code", resp.StatusCode))
		return fmt.Errorf("message request failed with status: %d", resp.StatusCode)
	}

	return nil
}
