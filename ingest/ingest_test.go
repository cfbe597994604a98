package ingest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/sabha/core"
)

func TestBuildAssignsPositionalIDs(t *testing.T) {
	records := make([]core.RawSession, 5)
	for i := range records {
		records[i] = core.RawSession{Title: fmt.Sprintf("Session %d", i)}
	}

	sessions := Build(records)

	require.Len(t, sessions, 5)
	for i, s := range sessions {
		assert.Equal(t, fmt.Sprintf("session-%d", i), s.ID)
	}

	// Identical input yields identical ids on a second build.
	again := Build(records)
	for i := range sessions {
		assert.Equal(t, sessions[i].ID, again[i].ID)
	}
}

func TestBuildInfersTopicAndDefaultsTags(t *testing.T) {
	sessions := Build([]core.RawSession{
		{Title: "AI in Healthcare", Description: "Clinical diagnosis at scale"},
		{Title: "Opening Ceremony", Description: ""},
		{Title: "Tagged", Tags: []string{"Workshop"}},
	})

	require.Len(t, sessions, 3)
	assert.Equal(t, "Healthcare", sessions[0].Topic)
	// No keyword hit defaults to the governance topic.
	assert.Equal(t, "AI Governance", sessions[1].Topic)

	assert.NotNil(t, sessions[0].Tags)
	assert.Empty(t, sessions[0].Tags)
	assert.Equal(t, []string{"Workshop"}, sessions[2].Tags)
}

func TestBuildNormalizesSpeakersAcrossSessions(t *testing.T) {
	// The variant pair never co-occurs in one session; only a global
	// mapping catches it.
	sessions := Build([]core.RawSession{
		{Title: "A", Speakers: []string{"Dr. Jane Smith, MIT"}},
		{Title: "B", Speakers: []string{"Jane Smith", "Dr. Jane Smith, MIT"}},
	})

	assert.Equal(t, []string{"Jane Smith, MIT"}, sessions[0].Speakers)
	assert.Equal(t, []string{"Jane Smith, MIT"}, sessions[1].Speakers)
}

func TestBuildSpeakerlessSessionGetsEmptyRoster(t *testing.T) {
	sessions := Build([]core.RawSession{{Title: "No speakers listed"}})

	require.Len(t, sessions, 1)
	// Non-nil so the JSON surface shows an empty list, not null.
	require.NotNil(t, sessions[0].Speakers)
	assert.Empty(t, sessions[0].Speakers)
}

func TestBuildPreservesFeedOrderAndFields(t *testing.T) {
	sessions := Build([]core.RawSession{
		{
			Title:             "Second comes first",
			Date:              "16 Feb 2026",
			Time:              "9:30 AM",
			Location:          "Bharat Mandapam",
			Room:              "Hall 3",
			Description:       "A session.",
			KnowledgePartners: []string{"Acme"},
		},
		{Title: "First comes second"},
	})

	require.Len(t, sessions, 2)
	assert.Equal(t, "Second comes first", sessions[0].Title)
	assert.Equal(t, "First comes second", sessions[1].Title)
	assert.Equal(t, "16 Feb 2026", sessions[0].Date)
	assert.Equal(t, "9:30 AM", sessions[0].Time)
	assert.Equal(t, "Bharat Mandapam", sessions[0].Location)
	assert.Equal(t, "Hall 3", sessions[0].Room)
	assert.Equal(t, []string{"Acme"}, sessions[0].KnowledgePartners)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	data := `[{"title":"Opening Keynote","date":"16 Feb 2026","time":"9:30 AM","speakers":["Dr. A B"],"description":"","knowledge_partners":[]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	l := &Loader{Source: path}
	sessions, err := l.Load()

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "session-0", sessions[0].ID)
	assert.Equal(t, []string{"A B"}, sessions[0].Speakers)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"title":"Remote"}]`)
	}))
	defer srv.Close()

	l := &Loader{Source: srv.URL}
	sessions, err := l.Load()

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Remote", sessions[0].Title)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		l := &Loader{Source: filepath.Join(t.TempDir(), "absent.json")}
		_, err := l.Load()
		assert.Error(t, err)
	})

	t.Run("malformed json rejects whole dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"title":`), 0o644))

		l := &Loader{Source: path}
		sessions, err := l.Load()
		assert.Error(t, err)
		assert.Nil(t, sessions)
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		l := &Loader{Source: srv.URL}
		_, err := l.Load()
		assert.Error(t, err)
	})
}
