package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/imroc/req/v3"

	"github.com/raids-lab/agencyos/dao/model"
)

const webhookTimeout = 10 * time.Second

// Message is the chat webhook payload.
type Message struct {
	Msgtype string      `json:"msgtype"`
	Text    MessageText `json:"text"`
}

type MessageText struct {
	Content string `json:"content"`
}

type webhookAlerter struct {
	url    string
	client *req.Client
}

func newWebhookAlerter(url string) alertHandlerInterface {
	return &webhookAlerter{
		url:    url,
		client: req.C().SetTimeout(webhookTimeout),
	}
}

// SendMessageTo posts the message to the team chat, mentioning the receiver by name.
func (w *webhookAlerter) SendMessageTo(ctx context.Context, receiver *model.Profile, subject, body string) error {
	msg := Message{
		Msgtype: "text",
		Text:    MessageText{Content: fmt.Sprintf("@%s %s\n%s", receiver.Name, subject, body)},
	}
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(&msg).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	if resp.IsErrorState() {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
