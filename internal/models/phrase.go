package models

// GenericKey marks the fallback entry of a category. Entries carrying it never
// take part in keyword matching.
const GenericKey = "generic"

// Perspective selects which side of a phrase entry is returned.
type Perspective string

const (
	PerspectiveMe  Perspective = "me"
	PerspectiveYou Perspective = "you"
)

// PhraseEntry is a set of trigger keywords with a first- and second-person phrase.
type PhraseEntry struct {
	Keys []string `json:"keys" yaml:"keys"`
	Me   string   `json:"me" yaml:"me"`
	You  string   `json:"you" yaml:"you"`
}

// IsGeneric reports whether the entry is a category fallback.
func (e PhraseEntry) IsGeneric() bool {
	for _, k := range e.Keys {
		if k == GenericKey {
			return true
		}
	}
	return false
}

// For returns the phrase for the given perspective. Anything other than "me"
// is treated as "you".
func (e PhraseEntry) For(p Perspective) string {
	if p == PerspectiveMe {
		return e.Me
	}
	return e.You
}

// CategoryTable is the ordered phrase data of a single category.
type CategoryTable struct {
	ID         string        `json:"id" yaml:"id"`
	Label      string        `json:"label" yaml:"label"`
	ColorToken string        `json:"color" yaml:"color"`
	Icon       string        `json:"icon" yaml:"icon"`
	Data       []PhraseEntry `json:"-" yaml:"data"`
}

// CategoryInfo is the public view of a category.
type CategoryInfo struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	ColorToken string `json:"color"`
	Icon       string `json:"icon"`
	Entries    int    `json:"entries"`
}

// Info returns the public view of the table.
func (t *CategoryTable) Info() CategoryInfo {
	return CategoryInfo{
		ID:         t.ID,
		Label:      t.Label,
		ColorToken: t.ColorToken,
		Icon:       t.Icon,
		Entries:    len(t.Data),
	}
}
