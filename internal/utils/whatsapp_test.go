package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationTemplateComponents(t *testing.T) {
	components := verificationTemplateComponents("123456")

	require.Len(t, components, 1)
	assert.Equal(t, "body", components[0]["type"])

	params, ok := components[0]["parameters"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, params, 1)
	assert.Equal(t, "text", params[0]["type"])
	assert.Equal(t, "123456", params[0]["text"])
}

func TestMessageRequest_TextEnvelope(t *testing.T) {
	msg := messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               "5511999998888",
		Type:             "text",
		Text:             &textPayload{Body: "olá"},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"messaging_product":"whatsapp"`)
	assert.Contains(t, body, `"to":"5511999998888"`)
	assert.NotContains(t, body, `"template"`, "text messages must omit the template section")
}

func TestMessageRequest_TemplateEnvelope(t *testing.T) {
	msg := messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               "5511999998888",
		Type:             "template",
		Template: &templatePayload{
			Name:       "verificacao",
			Language:   templateLanguage{Code: "pt_BR"},
			Components: verificationTemplateComponents("123456"),
		},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"name":"verificacao"`)
	assert.Contains(t, body, `"code":"pt_BR"`)
	assert.Contains(t, body, `"123456"`)
	assert.NotContains(t, body, `"text":{`, "template messages must omit the text section")
}
