package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Count is one key of an ordered counter
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts is a counter that remembers first-encounter order of its keys and
// marshals to a JSON object in that order
type Counts struct {
	entries []Count
	index   map[string]int
}

// NewCounts creates an empty counter
func NewCounts() *Counts {
	return &Counts{index: make(map[string]int)}
}

// Inc adds one to key, appending it if unseen
func (c *Counts) Inc(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Count{Key: key, Count: 1})
}

// Get returns the count for key
func (c *Counts) Get(key string) int {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys
func (c *Counts) Len() int { return len(c.entries) }

// Entries returns the keys with their counts in current order
func (c *Counts) Entries() []Count {
	out := make([]Count, len(c.entries))
	copy(out, c.entries)
	return out
}

// SortByCountDesc orders keys by count, highest first. Ties keep their
// first-encountered order.
func (c *Counts) SortByCountDesc() {
	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].Count > c.entries[j].Count
	})
	for i, e := range c.entries {
		c.index[e.Key] = i
	}
}

// MarshalJSON writes the counter as an object, preserving key order
func (c *Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, e.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, e.Count); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DaySummary holds the error counts for one calendar day
type DaySummary struct {
	Total      int     `json:"total"`
	Signatures *Counts `json:"signatures"`
}

// DayMap maps ISO dates to their summaries, keeping first-encounter order
type DayMap struct {
	dates []string
	days  map[string]*DaySummary
}

// NewDayMap creates an empty day map
func NewDayMap() *DayMap {
	return &DayMap{days: make(map[string]*DaySummary)}
}

// Day returns the summary for date, creating it if needed
func (m *DayMap) Day(date string) *DaySummary {
	if d, ok := m.days[date]; ok {
		return d
	}
	d := &DaySummary{Signatures: NewCounts()}
	m.days[date] = d
	m.dates = append(m.dates, date)
	return d
}

// Get returns the summary for date, or nil
func (m *DayMap) Get(date string) *DaySummary { return m.days[date] }

// Dates returns the dates in first-encounter order
func (m *DayMap) Dates() []string {
	out := make([]string, len(m.dates))
	copy(out, m.dates)
	return out
}

// SortedDates returns the dates in ascending order
func (m *DayMap) SortedDates() []string {
	out := m.Dates()
	sort.Strings(out)
	return out
}

// MarshalJSON writes the day map as an object in first-encounter order
func (m *DayMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, date := range m.dates {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, date); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, m.days[date]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Aggregation is the grouped view of the filtered error lines
type Aggregation struct {
	Total       int
	Days        []string
	First       string
	Last        string
	BySignature *Counts
	ByDay       *DayMap
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	return writeJSONValue(buf, s)
}

// writeJSONValue encodes v without HTML escaping so placeholders such as
// <oid> survive as written
func writeJSONValue(buf *bytes.Buffer, v interface{}) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
