package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

type mockUseCase struct {
	out   assistant.ChatOutput
	err   error
	input assistant.ChatInput
	scope model.Scope
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	m.input, m.scope = input, sc
	return m.out, m.err
}

func doChat(uc assistant.UseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", New(log.NewNop(), uc).Chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_Message(t *testing.T) {
	uc := &mockUseCase{out: assistant.ChatOutput{Response: assistant.NewMessage("✅ Task added: buy milk")}}

	w := doChat(uc, `{"message":"add a task to buy milk"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if want := `{"type":"message","content":"✅ Task added: buy milk"}`; w.Body.String() != want {
		t.Errorf("got %s, want %s", w.Body.String(), want)
	}
	if uc.input.Message != "add a task to buy milk" || uc.scope.Source != model.SourceWeb {
		t.Errorf("unexpected input %+v scope %+v", uc.input, uc.scope)
	}
}

func TestChat_Action(t *testing.T) {
	uc := &mockUseCase{out: assistant.ChatOutput{Response: assistant.NewAction(assistant.Action{Kind: assistant.ActionGetTasks})}}

	w := doChat(uc, `{"message":"list"}`)

	if want := `{"type":"action","content":{"action":"get_tasks"}}`; w.Body.String() != want {
		t.Errorf("got %s, want %s", w.Body.String(), want)
	}
}

func TestChat_BadBody(t *testing.T) {
	for _, body := range []string{`{}`, `not json`, `{"message":""}`} {
		w := doChat(&mockUseCase{}, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestChat_StorageFaultHidesDetail(t *testing.T) {
	w := doChat(&mockUseCase{err: errors.New("pq: relation tasks does not exist")}, `{"message":"add a task"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "relation") {
		t.Errorf("internal detail leaked: %s", w.Body.String())
	}
}
