package agent

import (
	"strings"

	"github.com/etnz/chaucha"
	"google.golang.org/genai"
)

// Role is the author of a chat Message.
type Role string

const (
	RoleUser  Role = Role(genai.RoleUser)
	RoleModel Role = Role(genai.RoleModel)
)

// Message is one entry of a mentor conversation.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	IsInitial bool   `json:"isInitial,omitempty"` // the greeting, never sent to the model
}

// NewMessage returns a message with a fresh id.
func NewMessage(role Role, text string) Message {
	return Message{ID: chaucha.NewID(), Role: role, Text: text}
}

// QuickReplies are offered to the user before the conversation has started.
var QuickReplies = []string{"Analizar gastos", "Crear presupuesto", "Ahorro"}

// Greeting returns the initial message of a conversation about u.
func Greeting(u chaucha.UserData) Message {
	d := chaucha.NewDashboard(u)
	var b strings.Builder
	b.WriteString("¡Hola")
	if d.Name != "" {
		b.WriteString(", " + d.Name)
	}
	b.WriteString("! He analizado tu perfil financiero. ")
	if d.CreditLimit > 0 {
		b.WriteString("Veo que tienes un " + d.CreditUsage.Rounded() + " de tu cupo de crédito utilizado. ")
	}
	b.WriteString("¿En qué puedo ayudarte hoy?")
	m := NewMessage(RoleModel, b.String())
	m.IsInitial = true
	return m
}

// history converts messages into model contents. The greeting and empty
// messages are skipped, the model expects the conversation to start with the user.
func history(messages []Message) []*genai.Content {
	var contents []*genai.Content
	for _, m := range messages {
		if m.IsInitial || strings.TrimSpace(m.Text) == "" {
			continue
		}
		if len(contents) == 0 && m.Role != RoleUser {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  string(m.Role),
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}
	return contents
}
