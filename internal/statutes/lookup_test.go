package statutes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/data"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/statutes"
)

func newTestIndex(t *testing.T) *statutes.Index {
	t.Helper()
	idx, err := statutes.NewIndex(data.Sections(), data.Articles())
	require.NoError(t, err)
	return idx
}

func TestParseSectionID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.SectionID
		wantErr  bool
	}{
		{"plain number", "302", domain.SectionID{Number: 302}, false},
		{"letter suffix", "41A", domain.SectionID{Number: 41, Suffix: "A"}, false},
		{"lowercase suffix", "498a", domain.SectionID{Number: 498, Suffix: "A"}, false},
		{"surrounding spaces", " 364A ", domain.SectionID{Number: 364, Suffix: "A"}, false},
		{"empty", "", domain.SectionID{}, true},
		{"suffix only", "A41", domain.SectionID{}, true},
		{"bad suffix", "302#", domain.SectionID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := statutes.ParseSectionID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIndex_Section(t *testing.T) {
	idx := newTestIndex(t)

	section, err := idx.Section("ipc", "302")
	require.NoError(t, err)
	assert.Equal(t, "Punishment for murder", section.Title)
	assert.Equal(t, domain.DomainCriminalLaw, section.Domain)

	// Code lookup is case-insensitive, id suffix too.
	section, err = idx.Section("CrPC", "41a")
	require.NoError(t, err)
	assert.Equal(t, "Notice of appearance before police officer", section.Title)

	_, err = idx.Section("ipc", "999")
	assert.ErrorIs(t, err, statutes.ErrNotFound)

	_, err = idx.Section("ipc", "not-a-section")
	require.Error(t, err)
	assert.NotErrorIs(t, err, statutes.ErrNotFound)
}

func TestIndex_Article(t *testing.T) {
	idx := newTestIndex(t)

	article, err := idx.Article("21")
	require.NoError(t, err)
	assert.Contains(t, article.Title, "life")

	_, err = idx.Article("9999")
	assert.ErrorIs(t, err, statutes.ErrNotFound)
}

func TestIndex_SectionsFor_SubdomainScoping(t *testing.T) {
	idx := newTestIndex(t)

	scoped := idx.SectionsFor(domain.DomainCriminalLaw, "kidnapping")
	require.NotEmpty(t, scoped)
	for _, s := range scoped {
		assert.Contains(t, s.Subdomains, "kidnapping", "section %s %s leaked into kidnapping scope", s.Code, s.ID)
	}

	// A subdomain with no tagged sections falls back to the whole domain.
	all := idx.SectionsFor(domain.DomainCriminalLaw, "some_future_subdomain")
	assert.Greater(t, len(all), len(scoped))

	// The general subdomain never scopes.
	general := idx.SectionsFor(domain.DomainCriminalLaw, domain.SubdomainGeneral)
	assert.Equal(t, len(all), len(general))

	assert.Empty(t, idx.SectionsFor("no_such_domain", ""))
}

func TestIndex_ArticlesFor(t *testing.T) {
	idx := newTestIndex(t)

	articles := idx.ArticlesFor(domain.DomainConstitutionalLaw)
	assert.NotEmpty(t, articles)

	for _, a := range articles {
		assert.Contains(t, a.Domains, domain.DomainConstitutionalLaw)
	}
}

func TestNewIndex_RejectsBadTables(t *testing.T) {
	_, err := statutes.NewIndex(nil, data.Articles())
	assert.Error(t, err)

	_, err = statutes.NewIndex(data.Sections(), nil)
	assert.Error(t, err)

	dup := append(data.Sections(), data.Sections()[0])
	_, err = statutes.NewIndex(dup, data.Articles())
	assert.Error(t, err)
}

func TestIndex_AllTablesCopied(t *testing.T) {
	idx := newTestIndex(t)

	sections := idx.AllSections()
	require.NotEmpty(t, sections)
	sections[0].Title = "mutated"

	again, err := idx.Section(sections[0].Code, sections[0].ID.String())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title)
}
