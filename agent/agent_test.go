package agent

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/etnz/chaucha"
	"google.golang.org/genai"
)

type staticProfile chaucha.UserData

func (p staticProfile) Snapshot() chaucha.UserData { return chaucha.UserData(p).Clone() }

func camila() staticProfile {
	return staticProfile{
		Name:            "Camila",
		MonthlyIncome:   1200000,
		CurrentBalance:  850000,
		CreditCardUsed:  300000,
		CreditCardLimit: 1000000,
		Transactions: []chaucha.Transaction{
			{ID: "t1", Date: "2023-10-20", Description: "Uber Eats", Amount: -12500, Category: "Alimentación"},
			{ID: "t2", Date: "2023-10-19", Description: "Starbucks", Amount: -4200, Category: "Ocio"},
		},
		IsConfigured: true,
	}
}

// fakeChat replays responses and records what it was sent.
type fakeChat struct {
	responses []*genai.GenerateContentResponse
	err       error
	sent      [][]*genai.Part
}

func (c *fakeChat) Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	c.sent = append(c.sent, parts)
	if c.err != nil {
		return nil, c.err
	}
	if len(c.responses) == 0 {
		return &genai.GenerateContentResponse{}, nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

// factory returns a ChatFactory always returning chat, and records the arguments.
type factory struct {
	chat    *fakeChat
	err     error
	config  *genai.GenerateContentConfig
	history []*genai.Content
}

func (f *factory) create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (Chat, error) {
	f.config, f.history = config, history
	if f.err != nil {
		return nil, f.err
	}
	return f.chat, nil
}

func reply(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func TestMentorSend(t *testing.T) {
	f := &factory{chat: &fakeChat{responses: []*genai.GenerateContentResponse{reply(&genai.Part{Text: "¡Vas bien!"})}}}
	m := NewMentor(f.create, camila(), "CLP", nil)

	prior := []Message{
		Greeting(chaucha.UserData(camila())),
		{ID: "1", Role: RoleUser, Text: "hola"},
		{ID: "2", Role: RoleModel, Text: "¿qué tal?"},
	}
	if got := m.Send(context.Background(), prior, "¿cómo voy?"); got != "¡Vas bien!" {
		t.Errorf("Send() = %q, want %q", got, "¡Vas bien!")
	}

	if len(f.history) != 2 || f.history[0].Role != "user" || f.history[0].Parts[0].Text != "hola" {
		t.Errorf("history sent to the model = %v, want the two messages after the greeting", f.history)
	}
	system := f.config.SystemInstruction.Parts[0].Text
	if !strings.Contains(system, "Eres Chaucha") || !strings.Contains(system, "Camila") {
		t.Errorf("system instruction lacks the prompt or the profile:\n%s", system)
	}
	if got := f.chat.sent[0][0].Text; got != "¿cómo voy?" {
		t.Errorf("sent %q, want the new message", got)
	}
}

func TestMentorSend_Fallbacks(t *testing.T) {
	testCases := []struct {
		name string
		f    *factory
		want string
	}{
		{"empty reply", &factory{chat: &fakeChat{}}, FallbackEmpty},
		{"blank text", &factory{chat: &fakeChat{responses: []*genai.GenerateContentResponse{reply(&genai.Part{Text: "  "})}}}, FallbackEmpty},
		{"send error", &factory{chat: &fakeChat{err: errors.New("503")}}, FallbackError},
		{"no chat", &factory{err: errors.New("no api key")}, FallbackError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMentor(tc.f.create, camila(), "CLP", nil)
			if got := m.Send(context.Background(), nil, "hola"); got != tc.want {
				t.Errorf("Send() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMentorSend_FunctionCalls(t *testing.T) {
	chat := &fakeChat{responses: []*genai.GenerateContentResponse{
		reply(&genai.Part{FunctionCall: &genai.FunctionCall{ID: "c1", Name: "VariableExpenses"}}),
		reply(&genai.Part{Text: "Gastas más en Alimentación."}),
	}}
	m := NewMentor((&factory{chat: chat}).create, camila(), "CLP", nil)

	if got := m.Send(context.Background(), nil, "¿en qué gasto?"); got != "Gastas más en Alimentación." {
		t.Errorf("Send() = %q", got)
	}
	if len(chat.sent) != 2 {
		t.Fatalf("model was asked %d times, want 2", len(chat.sent))
	}
	resp := chat.sent[1][0].FunctionResponse
	if resp == nil || resp.ID != "c1" || resp.Name != "VariableExpenses" {
		t.Fatalf("second message = %+v, want the function response", chat.sent[1][0])
	}
	if out, _ := resp.Response["output"].(string); !strings.Contains(out, "Alimentación") {
		t.Errorf("function output = %q, want the breakdown", out)
	}
}

func TestMentorSend_EndlessFunctionCalls(t *testing.T) {
	var responses []*genai.GenerateContentResponse
	for range maxCalls + 1 {
		responses = append(responses, reply(&genai.Part{FunctionCall: &genai.FunctionCall{Name: "Profile"}}))
	}
	m := NewMentor((&factory{chat: &fakeChat{responses: responses}}).create, camila(), "CLP", nil)
	if got := m.Send(context.Background(), nil, "hola"); got != FallbackError {
		t.Errorf("Send() = %q, want %q", got, FallbackError)
	}
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary(Tools(camila(), "CLP"))
	ctx := context.Background()

	resp := lib(ctx, &genai.FunctionCall{ID: "1", Name: "Nope"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("unknown function response = %v, want an error", resp.Response)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "2", Name: "Query", Args: map[string]any{"path": "$.transactions[*].description"}})
	if got := resp.Response["output"]; got != `["Uber Eats","Starbucks"]` {
		t.Errorf("Query output = %v", resp.Response)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "3", Name: "Query", Args: map[string]any{"path": 12}})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Query with a bad argument = %v, want an error", resp.Response)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "4", Name: "Profile"})
	if out, _ := resp.Response["output"].(string); !strings.Contains(out, "Camila") {
		t.Errorf("Profile output = %q", out)
	}
}

func TestHistory(t *testing.T) {
	got := history([]Message{
		{Role: RoleModel, Text: "greeting", IsInitial: true},
		{Role: RoleModel, Text: "orphan"},
		{Role: RoleUser, Text: " "},
		{Role: RoleUser, Text: "a"},
		{Role: RoleModel, Text: "b"},
	})
	var texts []string
	for _, c := range got {
		texts = append(texts, c.Role+":"+c.Parts[0].Text)
	}
	if want := []string{"user:a", "model:b"}; !reflect.DeepEqual(texts, want) {
		t.Errorf("history() = %v, want %v", texts, want)
	}
}

func TestGreeting(t *testing.T) {
	g := Greeting(chaucha.UserData(camila()))
	if !g.IsInitial || g.Role != RoleModel {
		t.Errorf("Greeting() = %+v, want an initial model message", g)
	}
	if !strings.Contains(g.Text, "Camila") || !strings.Contains(g.Text, "30%") {
		t.Errorf("Greeting() = %q, want the name and the credit usage", g.Text)
	}
	if g := Greeting(chaucha.UserData{}); strings.Contains(g.Text, "cupo") {
		t.Errorf("Greeting() without a card = %q", g.Text)
	}
}

// echo replies with the number of prior messages and the text.
type echo struct{ priors []int }

func (e *echo) Send(ctx context.Context, prior []Message, text string) string {
	e.priors = append(e.priors, len(prior))
	return "re: " + text
}

func TestSession(t *testing.T) {
	e := &echo{}
	s := NewSession(e, Greeting(chaucha.UserData{}))
	ctx := context.Background()

	if s.Started() {
		t.Error("new session is started")
	}
	if _, err := s.Send(ctx, "  "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("Send(blank) error = %v, want ErrEmptyMessage", err)
	}
	r, err := s.Send(ctx, "hola")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "re: hola" || r.Role != RoleModel || r.ID == "" {
		t.Errorf("Send() = %+v", r)
	}
	if _, err := s.Send(ctx, "chao"); err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(e.priors, want) {
		t.Errorf("prior lengths = %v, want %v", e.priors, want)
	}
	if n := len(s.Messages()); n != 5 {
		t.Errorf("session has %d messages, want 5", n)
	}
	if s.Pending() {
		t.Error("session still pending")
	}
}

func TestRun(t *testing.T) {
	e := &echo{}
	s := NewSession(e, Greeting(chaucha.UserData{}))
	var out bytes.Buffer

	err := Run(context.Background(), &out, strings.NewReader("¿y el arriendo?\nbye\nnot sent\n"), s, "2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"¿En qué puedo ayudarte hoy?", "1) Analizar gastos", "re: Crear presupuesto", "re: ¿y el arriendo?"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
	if len(e.priors) != 2 {
		t.Errorf("mentor was asked %d times, want 2", len(e.priors))
	}
}
