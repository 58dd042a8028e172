package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/delivery/telegram"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/log"
	pkgTelegram "personal-assistant/pkg/telegram"
)

type mockUseCase struct {
	out    assistant.ChatOutput
	err    error
	scopes chan model.Scope
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if m.scopes != nil {
		m.scopes <- sc
	}
	return m.out, m.err
}

// fakeTelegram records every sendMessage call.
func fakeTelegram(t *testing.T) (*pkgTelegram.Bot, <-chan pkgTelegram.SendMessageRequest) {
	t.Helper()
	sent := make(chan pkgTelegram.SendMessageRequest, 4)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgTelegram.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		sent <- req
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(ts.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return bot, sent
}

func postUpdate(h telegram.Handler, body, secret string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
	}
	r.ServeHTTP(w, req)
	return w
}

func waitSent(t *testing.T, sent <-chan pkgTelegram.SendMessageRequest) pkgTelegram.SendMessageRequest {
	t.Helper()
	select {
	case req := <-sent:
		return req
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sendMessage")
	}
	return pkgTelegram.SendMessageRequest{}
}

const textUpdate = `{"update_id":1,"message":{"message_id":7,"from":{"id":42,"first_name":"Sam"},"chat":{"id":99,"type":"private"},"date":0,"text":"%s"}}`

func TestHandleWebhook_RepliesWithAssistantMessage(t *testing.T) {
	bot, sent := fakeTelegram(t)
	uc := &mockUseCase{
		out:    assistant.ChatOutput{Response: assistant.NewMessage("✅ Task added: buy milk")},
		scopes: make(chan model.Scope, 1),
	}
	h := telegram.New(log.NewNop(), uc, bot, "")

	w := postUpdate(h, strings.Replace(textUpdate, "%s", "add a task to buy milk", 1), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req := waitSent(t, sent)
	if req.ChatID != 99 || req.Text != "✅ Task added: buy milk" {
		t.Errorf("unexpected reply %+v", req)
	}
	sc := <-uc.scopes
	if sc.UserID != "telegram_42" || sc.Source != model.SourceTelegram {
		t.Errorf("unexpected scope %+v", sc)
	}
}

func TestHandleWebhook_Commands(t *testing.T) {
	for _, cmd := range []string{"/start", "/help"} {
		bot, sent := fakeTelegram(t)
		h := telegram.New(log.NewNop(), &mockUseCase{}, bot, "")

		postUpdate(h, strings.Replace(textUpdate, "%s", cmd, 1), "")

		if req := waitSent(t, sent); !strings.Contains(req.Text, "task") {
			t.Errorf("%s: unexpected reply %q", cmd, req.Text)
		}
	}
}

func TestHandleWebhook_UseCaseErrorSendsApology(t *testing.T) {
	bot, sent := fakeTelegram(t)
	h := telegram.New(log.NewNop(), &mockUseCase{err: errors.New("db down")}, bot, "")

	postUpdate(h, strings.Replace(textUpdate, "%s", "show my tasks", 1), "")

	if req := waitSent(t, sent); req.Text != assistant.MsgError {
		t.Errorf("expected apology, got %q", req.Text)
	}
}

func TestHandleWebhook_IgnoresNonMessageUpdates(t *testing.T) {
	bot, _ := fakeTelegram(t)
	h := telegram.New(log.NewNop(), &mockUseCase{}, bot, "")

	w := postUpdate(h, `{"update_id":2}`, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	bot, _ := fakeTelegram(t)
	h := telegram.New(log.NewNop(), &mockUseCase{}, bot, "s3cret")

	if w := postUpdate(h, `{"update_id":3}`, "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong secret, got %d", w.Code)
	}
	if w := postUpdate(h, `{"update_id":3}`, "s3cret"); w.Code != http.StatusOK {
		t.Errorf("expected 200 for matching secret, got %d", w.Code)
	}
}
