package telegram

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	updatesLimit   = 100
)

var allowedUpdates = []string{"message", "channel_post"}

// Client reads a chat through the Bot API. The Bot API has no history
// endpoint, so messages come from getUpdates. Every page is handed to the
// caller before the next page is requested, and requesting the next page is
// what acknowledges the previous one: an aborted run leaves the unprocessed
// page on the server.
type Client struct {
	client   *req.Client
	apiToken string
	baseURL  string
	readOnly bool
}

func NewClient(
	apiToken string,
	cl *req.Client,
) *Client {
	return &Client{
		client:   cl,
		apiToken: apiToken,
		baseURL:  defaultBaseURL,
	}
}

// WithReadOnly makes IterateMessages read only the first page of pending
// updates and never acknowledge anything.
func (t *Client) WithReadOnly(readOnly bool) *Client {
	t.readOnly = readOnly
	return t
}

func (t *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%v/%s", t.baseURL, t.apiToken, method)
}

func (t *Client) FetchEntity(ctx context.Context, chatID int64) (*database.Chat, error) {
	var apiResp apiResponse[chat]

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("chat_id", strconv.FormatInt(chatID, 10)).
		SetSuccessResult(&apiResp).
		Get(t.methodURL("getChat"))
	if err = t.checkResponse(resp, err, apiResp.Ok); err != nil {
		return nil, err
	}

	title := apiResp.Result.Title
	if title == "" {
		title = strings.TrimSpace(apiResp.Result.FirstName + " " + apiResp.Result.UserName)
	}

	return &database.Chat{
		ID:    apiResp.Result.ID,
		Title: title,
	}, nil
}

func (t *Client) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	body := map[string]interface{}{
		"limit":           updatesLimit,
		"timeout":         0,
		"allowed_updates": allowedUpdates,
	}
	if offset > 0 {
		body["offset"] = offset
	}

	var apiResp apiResponse[[]update]

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(body).
		SetSuccessResult(&apiResp).
		Post(t.methodURL("getUpdates"))
	if err = t.checkResponse(resp, err, apiResp.Ok); err != nil {
		return nil, err
	}

	return apiResp.Result, nil
}

// IterateMessages calls fn for every message of chatID with an id above
// minID, oldest first. An error from fn stops the iteration and is returned
// as is.
func (t *Client) IterateMessages(
	ctx context.Context,
	chatID int64,
	minID int64,
	fn func(msg database.Message) error,
) error {
	var offset int64

	for ctx.Err() == nil {
		updates, err := t.getUpdates(ctx, offset)
		if err != nil {
			return err
		}

		if len(updates) == 0 {
			return nil
		}

		page := t.chatMessages(updates, chatID, minID)
		for _, msg := range page {
			if err = fn(msg); err != nil {
				return err
			}

			minID = msg.ID
		}

		if t.readOnly {
			return nil
		}

		offset = lo.MaxBy(updates, func(a update, b update) bool {
			return a.UpdateID > b.UpdateID
		}).UpdateID + 1
	}

	return ctx.Err()
}

func (t *Client) chatMessages(updates []update, chatID int64, minID int64) []database.Message {
	var messages []database.Message

	for _, u := range updates {
		m := u.Message
		if m == nil {
			m = u.ChannelPost
		}

		if m == nil || m.Chat.ID != chatID || m.MessageID <= minID {
			continue
		}

		messages = append(messages, toMessage(m))
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].ID < messages[j].ID
	})

	return lo.UniqBy(messages, func(m database.Message) int64 {
		return m.ID
	})
}

func toMessage(m *message) database.Message {
	msg := database.Message{
		ID:     m.MessageID,
		Sender: senderName(m),
		Date:   time.Unix(m.Date, 0).UTC(),
		Text:   m.Text,
	}

	if msg.Text == "" {
		msg.Text = m.Caption
	}

	if m.Document != nil {
		msg.Attachment = &database.Attachment{
			FileID:   m.Document.FileID,
			FileName: m.Document.FileName,
			MimeType: m.Document.MimeType,
			Size:     m.Document.FileSize,
		}
	}

	return msg
}

func senderName(m *message) string {
	switch {
	case m.From != nil && m.From.FirstName != "":
		return m.From.FirstName
	case m.From != nil:
		return m.From.UserName
	case m.AuthorSignature != "":
		return m.AuthorSignature
	case m.SenderChat != nil:
		return m.SenderChat.Title
	default:
		return m.Chat.Title
	}
}

// LatestMessage returns the newest pending message of the chat, or nil.
// Updates acknowledged by an earlier sync are no longer returned by the API.
func (t *Client) LatestMessage(ctx context.Context, chatID int64) (*database.Message, error) {
	updates, err := t.getUpdates(ctx, 0)
	if err != nil {
		return nil, err
	}

	messages := t.chatMessages(updates, chatID, 0)
	if len(messages) == 0 {
		return nil, nil
	}

	return &messages[len(messages)-1], nil
}

func (t *Client) GetFile(ctx context.Context, fileID string) ([]byte, error) {
	var apiResp apiResponse[file]

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("file_id", fileID).
		SetSuccessResult(&apiResp).
		Get(t.methodURL("getFile"))
	if err = t.checkResponse(resp, err, apiResp.Ok); err != nil {
		return nil, err
	}

	resp, err = t.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/file/bot%v/%s", t.baseURL, t.apiToken, apiResp.Result.FilePath))
	if err = t.checkResponse(resp, err, true); err != nil {
		return nil, err
	}

	return resp.Bytes(), nil
}

// DownloadAttachment stores the document of msg at destination.
func (t *Client) DownloadAttachment(
	ctx context.Context,
	msg database.Message,
	destination string,
) (string, error) {
	if msg.Attachment == nil {
		return "", errors.Newf("message %d has no attachment", msg.ID)
	}

	data, err := t.GetFile(ctx, msg.Attachment.FileID)
	if err != nil {
		return "", err
	}

	if err = common.WriteFile(destination, bytes.NewReader(data)); err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().Int64("message_id", msg.ID).Str("file", destination).
		Int("bytes", len(data)).Msg("attachment downloaded")

	return destination, nil
}

func (t *Client) SendMessage(
	ctx context.Context,
	chatID int64,
	text string,
) error {
	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id": chatID,
			"text":    text,
		}).
		SetContext(ctx).
		Post(t.methodURL("sendMessage"))

	return t.checkResponse(resp, err, true)
}

func (t *Client) React(
	ctx context.Context,
	chatID int64,
	messageID int64,
	reaction string,
) error {
	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id":    chatID,
			"message_id": messageID,
			"reaction": []map[string]interface{}{
				{
					"type":  "emoji",
					"emoji": reaction,
				},
			},
		}).
		SetContext(ctx).
		Post(t.methodURL("setMessageReaction"))

	return t.checkResponse(resp, err, true)
}

func (t *Client) checkResponse(resp *req.Response, err error, ok bool) error {
	if err != nil {
		return errors.Mark(errors.WithStack(err), common.ErrTransport)
	}

	if resp.IsErrorState() {
		return errors.Wrapf(common.ErrTransport, "unexpected status code: %v and message %v",
			resp.StatusCode, resp.String())
	}

	if !ok {
		return errors.Wrapf(common.ErrTransport, "telegram returned not ok: %v", resp.String())
	}

	return nil
}
