package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/pkg/config"
)

func TestParseReceipt_Markdown(t *testing.T) {
	raw := "Aquí está:\n```json\n{\"numero_boleta\":\" 004512 \",\"monto\":\"$12.990\",\"fecha\":\"2026-03-14\",\"rut_emisor\":\"76.000.000-0\",\"confianza\":1.4}\n```"
	got, err := parseReceipt(raw)
	require.NoError(t, err)
	assert.Equal(t, "004512", got.ReceiptNumber)
	assert.Equal(t, "12990", got.Amount.String())
	assert.Equal(t, "2026-03-14", got.Date)
	assert.Equal(t, "76000000-0", got.IssuerRUT)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestParseReceipt_CamposIlegibles(t *testing.T) {
	got, err := parseReceipt(`{"numero_boleta":"","monto":null,"fecha":"14/03/2026","rut_emisor":"123","confianza":0.2}`)
	require.NoError(t, err)
	assert.True(t, got.Amount.IsZero())
	assert.Empty(t, got.Date)
	assert.Empty(t, got.IssuerRUT)
	assert.Equal(t, 0.2, got.Confidence)

	_, err = parseReceipt("no pude leer la imagen")
	assert.Error(t, err)
}

func TestAnthropicService_ReadReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "clave", r.Header.Get("x-api-key"))
		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "image", req.Messages[0].Content[0].Type)
		assert.Equal(t, "image/jpeg", req.Messages[0].Content[0].Source.MediaType)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"numero_boleta\":\"77\",\"monto\":5000,\"fecha\":\"2026-01-02\",\"rut_emisor\":\"\",\"confianza\":0.9}"}]}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("clave", "modelo")
	s.endpoint = srv.URL
	got, err := s.ReadReceipt(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "77", got.ReceiptNumber)
	assert.Equal(t, "5000", got.Amount.String())
}

func TestAnthropicService_ErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"lento"}}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("clave", "modelo")
	s.endpoint = srv.URL
	_, err := s.ReadReceipt(context.Background(), []byte{1}, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")

	_, err = NewAnthropicService("", "m").ReadReceipt(context.Background(), nil, "image/png")
	assert.Error(t, err)
}

func TestGeminiService_ReadReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/flash:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"numero_boleta\":\"9\",\"monto\":1990,\"fecha\":\"\",\"rut_emisor\":\"12.345.678-5\",\"confianza\":0.5}"}]}}]}`))
	}))
	defer srv.Close()

	s := NewGeminiService("k", "flash")
	s.baseURL = srv.URL
	got, err := s.ReadReceipt(context.Background(), []byte{1}, "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", got.IssuerRUT)
	assert.Equal(t, "1990", got.Amount.String())
}

func TestNewReceiptReader(t *testing.T) {
	r, err := NewReceiptReader(config.AIConfig{Provider: "anthropic"})
	require.NoError(t, err)
	assert.Nil(t, r, "sin API key el OCR queda deshabilitado")

	r, err = NewReceiptReader(config.AIConfig{Provider: "gemini", GeminiAPIKey: "k", GeminiModel: "m"})
	require.NoError(t, err)
	assert.IsType(t, &GeminiService{}, r)

	_, err = NewReceiptReader(config.AIConfig{Provider: "otro"})
	assert.Error(t, err)
}
