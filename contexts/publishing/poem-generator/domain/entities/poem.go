package entities

import "strings"

// GeneratedPoem is generator output before it is submitted as a poem.
type GeneratedPoem struct {
	Content string
	Theme   string
	Style   string
}

// Options are free-form hints parsed from an enhanced title such as
// "Harbor Lights (style: sonnet, tone: wistful, length: short)".
type Options struct {
	Style      string
	Tone       string
	Emotion    string
	Theme      string
	Length     string
	Additional string
}

// Request is one generation request after title parsing.
type Request struct {
	Title   string
	Options Options
}

// ParseRequest splits a trailing "(key: value, ...)" block off the title.
// Unknown keys are ignored; "any" is treated as unset.
func ParseRequest(raw string) Request {
	raw = strings.TrimSpace(raw)
	open := strings.Index(raw, "(")
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return Request{Title: raw}
	}
	base := strings.TrimSpace(raw[:open])
	if base == "" {
		return Request{Title: raw}
	}

	var options Options
	for _, pair := range strings.Split(raw[open+1:len(raw)-1], ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, "any") {
			continue
		}
		switch key {
		case "style":
			options.Style = value
		case "tone":
			options.Tone = value
		case "emotion":
			options.Emotion = value
		case "theme":
			options.Theme = value
		case "length":
			options.Length = strings.ToLower(value)
		case "additional":
			options.Additional = value
		}
	}
	return Request{Title: base, Options: options}
}
