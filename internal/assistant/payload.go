package assistant

import "encoding/json"

type PayloadKind string

const (
	PayloadPlainText          PayloadKind = "plain_text"
	PayloadProductInfo        PayloadKind = "product_info"
	PayloadDownloadLink       PayloadKind = "download_link"
	PayloadMultiDownloadLinks PayloadKind = "multi_download_links"
)

type ProductInfo struct {
	Name        string            `json:"name"`
	VendorCode  string            `json:"vendorCode"`
	Description string            `json:"description"`
	Picture     string            `json:"picture"`
	Price       string            `json:"price"`
	Params      map[string]string `json:"params"`
}

type DownloadLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type DownloadLinkItem struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

type MultiDownloadLinks struct {
	Items []DownloadLinkItem `json:"items"`
}

// Payload is the tagged union of assistant response shapes. Exactly one
// variant is active; only the composer constructs structured variants, so
// user-typed text can never be misread as a card.
type Payload struct {
	Kind    PayloadKind
	Text    string
	Product *ProductInfo
	Link    *DownloadLink
	Links   *MultiDownloadLinks
}

func NewPlainText(text string) Payload {
	return Payload{Kind: PayloadPlainText, Text: text}
}

func NewProductInfo(info ProductInfo) Payload {
	return Payload{Kind: PayloadProductInfo, Product: &info}
}

func NewDownloadLink(link DownloadLink) Payload {
	return Payload{Kind: PayloadDownloadLink, Link: &link}
}

func NewMultiDownloadLinks(items []DownloadLinkItem) Payload {
	return Payload{Kind: PayloadMultiDownloadLinks, Links: &MultiDownloadLinks{Items: items}}
}

type payloadEnvelope struct {
	Type PayloadKind     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalContent serializes the payload for message storage. Structured
// variants use a {"type","data"} envelope; plain text is stored verbatim.
func (p Payload) MarshalContent() (string, error) {
	var data interface{}
	switch p.Kind {
	case PayloadProductInfo:
		data = p.Product
	case PayloadDownloadLink:
		data = p.Link
	case PayloadMultiDownloadLinks:
		data = p.Links
	default:
		return p.Text, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	envelope, err := json.Marshal(payloadEnvelope{Type: p.Kind, Data: raw})
	if err != nil {
		return "", err
	}
	return string(envelope), nil
}

// ParseAssistantContent decodes stored assistant content back into a
// payload. Content that is not a well-formed envelope of a known structured
// kind is plain text. Callers must never apply this to user-authored
// messages; those are plain text by construction.
func ParseAssistantContent(content string) Payload {
	var envelope payloadEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return NewPlainText(content)
	}

	switch envelope.Type {
	case PayloadProductInfo:
		var info ProductInfo
		if json.Unmarshal(envelope.Data, &info) == nil {
			return NewProductInfo(info)
		}
	case PayloadDownloadLink:
		var link DownloadLink
		if json.Unmarshal(envelope.Data, &link) == nil {
			return NewDownloadLink(link)
		}
	case PayloadMultiDownloadLinks:
		var links MultiDownloadLinks
		if json.Unmarshal(envelope.Data, &links) == nil {
			return NewMultiDownloadLinks(links.Items)
		}
	}

	return NewPlainText(content)
}
