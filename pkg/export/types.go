package export

import (
	"encoding/json"
	"strings"
)

type chatExport struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ID       int64           `json:"id"`
	Messages []exportMessage `json:"messages"`
}

type exportMessage struct {
	ID           int64    `json:"id"`
	Type         string   `json:"type"`
	Date         string   `json:"date"`
	DateUnixTime string   `json:"date_unixtime"`
	From         string   `json:"from"`
	Text         richText `json:"text"`
	File         string   `json:"file"`
	FileName     string   `json:"file_name"`
	MimeType     string   `json:"mime_type"`
	MediaType    string   `json:"media_type"`
}

// richText is either a plain string or a list of strings and entity objects.
type richText string

func (r *richText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*r = richText(plain)
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}

	var sb strings.Builder
	for _, part := range parts {
		var s string
		if err := json.Unmarshal(part, &s); err == nil {
			sb.WriteString(s)
			continue
		}

		var entity struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(part, &entity); err != nil {
			return err
		}

		sb.WriteString(entity.Text)
	}

	*r = richText(sb.String())

	return nil
}
