// Package ingest loads the raw session dataset and maps it into session
// entities: stable positional ids, inferred topics, defaulted tags, and
// speaker lists rewritten through the global identity mapping.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sonnes/sabha/core"
	"github.com/sonnes/sabha/speaker"
)

// Loader fetches and ingests a session dataset from a local file or an
// http(s) URL. A fetch or parse failure is terminal for the load attempt —
// no partial dataset is ever returned.
type Loader struct {
	// Source is a file path or an http(s) URL to a JSON array of raw
	// session records.
	Source string

	// Client overrides the HTTP client used for URL sources.
	Client *http.Client
}

// Load fetches the dataset and returns the ingested session list.
func (l *Loader) Load() ([]core.Session, error) {
	body, err := l.fetch()
	if err != nil {
		return nil, err
	}

	var records []core.RawSession
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	return Build(records), nil
}

func (l *Loader) fetch() ([]byte, error) {
	if strings.HasPrefix(l.Source, "http://") || strings.HasPrefix(l.Source, "https://") {
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Get(l.Source)
		if err != nil {
			return nil, fmt.Errorf("fetch dataset: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		return body, nil
	}

	body, err := os.ReadFile(l.Source)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return body, nil
}

// Build maps raw records into session entities in feed order. The speaker
// mapping is built once over the full cross-session roster before any
// per-session list is rewritten. Ids are positional ("session-0" onward),
// assigned exactly once and never recomputed. Build performs no validation;
// rejecting a malformed dataset is the fetch/parse layer's job.
func Build(records []core.RawSession) []core.Session {
	var allSpeakers []string
	for _, r := range records {
		allSpeakers = append(allSpeakers, r.Speakers...)
	}
	mapping := speaker.BuildMapping(allSpeakers)

	sessions := make([]core.Session, len(records))
	for i, r := range records {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		sessions[i] = core.Session{
			ID:                fmt.Sprintf("session-%d", i),
			Title:             r.Title,
			Date:              r.Date,
			Time:              r.Time,
			Location:          r.Location,
			Room:              r.Room,
			Speakers:          speaker.NormalizeAll(r.Speakers, mapping),
			Description:       r.Description,
			KnowledgePartners: r.KnowledgePartners,
			Topic:             core.InferTopic(r.Title, r.Description),
			Tags:              tags,
		}
	}
	return sessions
}
