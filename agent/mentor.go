package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/renderer"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Model is the Gemini model used by the mentor.
const Model = "gemini-2.5-pro"

// Replies used when the model cannot answer. They are shown to the user as is.
const (
	FallbackEmpty = "Lo siento, no pude procesar tu solicitud en este momento."
	FallbackError = "Hubo un problema conectando con el servicio de IA. Por favor intenta nuevamente."
)

// maxCalls bounds the function calls the model can chain before answering.
const maxCalls = 8

const instruction = `Eres Chaucha, un asistente financiero chileno inteligente, amigable y proactivo.
Tu tono es cercano pero profesional, usando modismos chilenos sutiles si es apropiado (como "lucas" para dinero, "pega" para trabajo, pero manteniéndolo comprensible).
Tu objetivo es ayudar al usuario a mejorar su salud financiera, analizar sus gastos y dar consejos de presupuesto.
Siempre responde de manera concisa y útil.

Abajo está el perfil financiero actual del usuario. Usa las herramientas disponibles si necesitas cifras más recientes o detalladas.
`

// Chat is a conversation with the model.
type Chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// ChatFactory starts a Chat with a prior history.
type ChatFactory func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (Chat, error)

// GeminiChats returns a ChatFactory backed by the Gemini client.
func GeminiChats(client *genai.Client) ChatFactory {
	return func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (Chat, error) {
		chat, err := client.Chats.Create(ctx, model, config, history)
		if err != nil {
			return nil, err
		}
		return chat, nil
	}
}

// Mentor answers the user's questions about their finances.
type Mentor struct {
	chats    ChatFactory
	profile  Profiler
	currency string
	log      *zap.Logger
}

// NewMentor returns a Mentor talking about the profile p, amounts shown in currency cur.
func NewMentor(chats ChatFactory, p Profiler, cur string, log *zap.Logger) *Mentor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mentor{chats: chats, profile: p, currency: cur, log: log}
}

// Send sends text after the prior conversation and returns the model's reply.
//
// Failures never escape: the reply is then FallbackError, or FallbackEmpty
// when the model had nothing to say.
func (m *Mentor) Send(ctx context.Context, prior []Message, text string) string {
	reply, err := m.ask(ctx, prior, text)
	if err != nil {
		m.log.Warn("mentor request failed", zap.Error(err))
		return FallbackError
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackEmpty
	}
	return reply
}

func (m *Mentor) config() *genai.GenerateContentConfig {
	tools := Tools(m.profile, m.currency)
	system := instruction + "\n" + renderer.Profile(m.profile.Snapshot(), m.currency)
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: NewDeclaration(tools)},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
}

func (m *Mentor) ask(ctx context.Context, prior []Message, text string) (string, error) {
	chat, err := m.chats(ctx, Model, m.config(), history(prior))
	if err != nil {
		return "", fmt.Errorf("cannot start chat: %w", err)
	}
	library := NewLibrary(Tools(m.profile, m.currency))

	parts := []*genai.Part{{Text: text}}
	for range maxCalls {
		resp, err := chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		content := firstContent(resp)
		if content == nil {
			return "", nil
		}

		// Answer every function call, then ask again until we have a real response.
		parts = nil
		var reply strings.Builder
		for _, p := range content.Parts {
			switch {
			case p.FunctionCall != nil:
				m.log.Debug("mentor function call", zap.String("name", p.FunctionCall.Name))
				parts = append(parts, &genai.Part{FunctionResponse: library(ctx, p.FunctionCall)})
			case !p.Thought:
				reply.WriteString(p.Text)
			}
		}
		if len(parts) == 0 {
			return reply.String(), nil
		}
	}
	return "", errors.New("too many function calls")
}

func firstContent(resp *genai.GenerateContentResponse) *genai.Content {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content
}

var _ Profiler = (*chaucha.Store)(nil)
