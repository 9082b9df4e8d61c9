// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"encoding/json"
	"strings"
)

// Properties read from an entity's claims.
const (
	PropImage      = "P18"
	PropOccupation = "P106"
	PropBirthDate  = "P569"
	PropDeathDate  = "P570"
)

// Entity is the subset of a Wikibase entity record the resolver reads.
type Entity struct {
	ID           string                 `json:"id"`
	Labels       map[string]LangValue   `json:"labels"`
	Descriptions map[string]LangValue   `json:"descriptions"`
	Claims       map[string][]Statement `json:"claims"`
	Sitelinks    map[string]Sitelink    `json:"sitelinks"`
	Missing      *string                `json:"missing,omitempty"`
}

// LangValue is a language-tagged string (label, description).
type LangValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Sitelink points to the page of the entity on a client wiki.
type Sitelink struct {
	Site  string `json:"site"`
	Title string `json:"title"`
}

// Statement is one claim about the entity. Only the main snak is used.
type Statement struct {
	MainSnak Snak   `json:"mainsnak"`
	Rank     string `json:"rank"`
}

// Snak carries the property and, for snaktype "value", its data value.
type Snak struct {
	SnakType  string     `json:"snaktype"`
	Property  string     `json:"property"`
	DataValue *DataValue `json:"datavalue,omitempty"`
}

// DataValue holds a raw value whose shape depends on Type: a string for
// commonsMedia, an object for time and wikibase-entityid.
type DataValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// TimeValue is a Wikibase time, e.g. {"time": "+1952-03-11T00:00:00Z"}.
type TimeValue struct {
	Time      string `json:"time"`
	Precision int    `json:"precision"`
}

type entityIDValue struct {
	ID string `json:"id"`
}

// LabelIn returns the label in lang, else in English, else "".
func (e *Entity) LabelIn(lang string) string {
	return pick(e.Labels, lang)
}

// DescriptionIn returns the description in lang, else in English, else "".
func (e *Entity) DescriptionIn(lang string) string {
	return pick(e.Descriptions, lang)
}

func pick(values map[string]LangValue, lang string) string {
	if v := values[lang].Value; v != "" {
		return v
	}
	return values["en"].Value
}

// FirstTime decodes the first statement of prop as a time value. It returns
// nil when the property is absent or its first statement carries no time.
func (e *Entity) FirstTime(prop string) *TimeValue {
	raw := e.firstValue(prop)
	if raw == nil {
		return nil
	}
	var tv TimeValue
	if err := json.Unmarshal(raw, &tv); err != nil {
		return nil
	}
	return &tv
}

// FirstString decodes the first statement of prop as a string, such as a
// Commons filename.
func (e *Entity) FirstString(prop string) string {
	raw := e.firstValue(prop)
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// EntityIDs returns the entity ids referenced by prop in claim order,
// skipping statements without a usable value.
func (e *Entity) EntityIDs(prop string) []string {
	var ids []string
	for _, st := range e.Claims[prop] {
		if st.MainSnak.DataValue == nil {
			continue
		}
		var v entityIDValue
		if err := json.Unmarshal(st.MainSnak.DataValue.Value, &v); err != nil || v.ID == "" {
			continue
		}
		ids = append(ids, v.ID)
	}
	return ids
}

func (e *Entity) firstValue(prop string) json.RawMessage {
	statements := e.Claims[prop]
	if len(statements) == 0 || statements[0].MainSnak.DataValue == nil {
		return nil
	}
	return statements[0].MainSnak.DataValue.Value
}

// SitelinkTitle returns the page title on <lang>wiki, else on enwiki,
// together with the language of the wiki it came from.
func (e *Entity) SitelinkTitle(lang string) (title, wikiLang string) {
	// Site ids use underscores: zh-min-nan -> zh_min_nanwiki.
	site := strings.ReplaceAll(lang, "-", "_") + "wiki"
	if t := e.Sitelinks[site].Title; t != "" {
		return t, lang
	}
	if t := e.Sitelinks["enwiki"].Title; t != "" {
		return t, "en"
	}
	return "", ""
}

// ParseTime returns the date part of a Wikibase time: the leading "+" is
// removed and the rest cut to ten characters. It does not validate the date.
func ParseTime(tv *TimeValue) string {
	if tv == nil || tv.Time == "" {
		return ""
	}
	s := strings.TrimLeft(tv.Time, "+")
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}
