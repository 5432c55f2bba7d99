package iconset

import (
	"encoding/json"
	"fmt"

	"iconbundle/internal/domain"
)

type iconPayload struct {
	Body   string  `json:"body"`
	Left   float64 `json:"left,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Rotate int     `json:"rotate,omitempty"`
	HFlip  bool    `json:"hFlip,omitempty"`
	VFlip  bool    `json:"vFlip,omitempty"`
}

type aliasPayload struct {
	Parent string `json:"parent"`
	Rotate int    `json:"rotate,omitempty"`
	HFlip  bool   `json:"hFlip,omitempty"`
	VFlip  bool   `json:"vFlip,omitempty"`
}

type setPayload struct {
	Prefix  string                  `json:"prefix"`
	Icons   map[string]iconPayload  `json:"icons"`
	Aliases map[string]aliasPayload `json:"aliases,omitempty"`
	Width   float64                 `json:"width,omitempty"`
	Height  float64                 `json:"height,omitempty"`
}

// Decode parses a JSON collection document into an icon set.
func Decode(data []byte) (*domain.IconSet, error) {
	var payload setPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if !domain.ValidName(payload.Prefix) {
		return nil, fmt.Errorf("decode collection: invalid prefix %q", payload.Prefix)
	}
	if len(payload.Icons) == 0 {
		return nil, fmt.Errorf("decode collection %s: no icons", payload.Prefix)
	}

	set := domain.NewIconSet(domain.Prefix(payload.Prefix))
	set.Width = payload.Width
	set.Height = payload.Height

	for name, icon := range payload.Icons {
		if !domain.ValidName(name) {
			return nil, fmt.Errorf("decode collection %s: invalid icon name %q", payload.Prefix, name)
		}
		if icon.Body == "" {
			return nil, fmt.Errorf("decode collection %s: icon %s has no body", payload.Prefix, name)
		}
		set.Icons[domain.IconName(name)] = domain.Icon{
			Body:   icon.Body,
			Left:   icon.Left,
			Top:    icon.Top,
			Width:  icon.Width,
			Height: icon.Height,
			Rotate: icon.Rotate,
			HFlip:  icon.HFlip,
			VFlip:  icon.VFlip,
		}
	}

	for name, alias := range payload.Aliases {
		if !domain.ValidName(name) {
			return nil, fmt.Errorf("decode collection %s: invalid alias name %q", payload.Prefix, name)
		}
		if alias.Parent == "" {
			return nil, fmt.Errorf("decode collection %s: alias %s has no parent", payload.Prefix, name)
		}
		if _, clash := set.Icons[domain.IconName(name)]; clash {
			return nil, fmt.Errorf("decode collection %s: alias %s duplicates an icon", payload.Prefix, name)
		}
		set.Aliases[domain.IconName(name)] = domain.Alias{
			Parent: domain.IconName(alias.Parent),
			Rotate: alias.Rotate,
			HFlip:  alias.HFlip,
			VFlip:  alias.VFlip,
		}
	}

	return set, nil
}

// Encode serializes an icon set to an indented JSON collection document.
func Encode(set *domain.IconSet) ([]byte, error) {
	payload := setPayload{
		Prefix:  string(set.Prefix),
		Icons:   make(map[string]iconPayload, len(set.Icons)),
		Aliases: make(map[string]aliasPayload, len(set.Aliases)),
		Width:   set.Width,
		Height:  set.Height,
	}
	for name, icon := range set.Icons {
		payload.Icons[string(name)] = iconPayload{
			Body:   icon.Body,
			Left:   icon.Left,
			Top:    icon.Top,
			Width:  icon.Width,
			Height: icon.Height,
			Rotate: icon.Rotate,
			HFlip:  icon.HFlip,
			VFlip:  icon.VFlip,
		}
	}
	for name, alias := range set.Aliases {
		payload.Aliases[string(name)] = aliasPayload{
			Parent: string(alias.Parent),
			Rotate: alias.Rotate,
			HFlip:  alias.HFlip,
			VFlip:  alias.VFlip,
		}
	}
	if len(payload.Aliases) == 0 {
		payload.Aliases = nil
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode collection %s: %w", set.Prefix, err)
	}
	return data, nil
}
