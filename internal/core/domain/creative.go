package domain

// MediaType is the kind of a creative attachment.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a single attachment of the advertised content.
type Media struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
}

// Creative is the advertised content, either copied from an existing post
// or authored inline.
type Creative struct {
	Text  string  `json:"text,omitempty"`
	Link  string  `json:"link,omitempty"`
	Media []Media `json:"media,omitempty"`
}

// IsZero reports whether no content has been set.
func (c Creative) IsZero() bool {
	return c.Text == "" && c.Link == "" && len(c.Media) == 0
}
