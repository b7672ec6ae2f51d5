// Package statutes provides read-only lookup of statute sections and
// constitutional articles for a resolved legal domain/subdomain. The tables
// are injected at startup and never regenerated at runtime.
package statutes

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// ErrNotFound is returned when a section or article key is absent.
var ErrNotFound = errors.New("statutes: not found")

// ParseSectionID parses identifiers like "302" or "41A" into the tagged
// representation: a numeric part plus an optional letter suffix.
func ParseSectionID(s string) (domain.SectionID, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return domain.SectionID{}, fmt.Errorf("parse section id: empty input")
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return domain.SectionID{}, fmt.Errorf("parse section id %q: missing numeric part", s)
	}

	number := 0
	for _, r := range s[:i] {
		number = number*10 + int(r-'0')
	}

	suffix := s[i:]
	for _, r := range suffix {
		if !unicode.IsLetter(r) {
			return domain.SectionID{}, fmt.Errorf("parse section id %q: invalid suffix", s)
		}
	}

	return domain.SectionID{Number: number, Suffix: suffix}, nil
}

// Index is the immutable lookup structure over the statute tables.
type Index struct {
	byKey     map[string]domain.StatuteSection
	byDomain  map[string][]domain.StatuteSection
	articles  []domain.ConstitutionArticle
	byArticle map[string]domain.ConstitutionArticle
	sections  []domain.StatuteSection
}

// NewIndex builds the lookup index. Empty tables are a configuration error:
// the service cannot run without its reference data and must fail at startup.
func NewIndex(sections []domain.StatuteSection, articles []domain.ConstitutionArticle) (*Index, error) {
	if len(sections) == 0 {
		return nil, errors.New("statutes: empty section table")
	}
	if len(articles) == 0 {
		return nil, errors.New("statutes: empty article table")
	}

	idx := &Index{
		byKey:     make(map[string]domain.StatuteSection, len(sections)),
		byDomain:  make(map[string][]domain.StatuteSection),
		articles:  articles,
		byArticle: make(map[string]domain.ConstitutionArticle, len(articles)),
		sections:  sections,
	}

	for _, s := range sections {
		key := sectionKey(s.Code, s.ID)
		if _, dup := idx.byKey[key]; dup {
			return nil, fmt.Errorf("statutes: duplicate section %s %s", s.Code, s.ID)
		}
		idx.byKey[key] = s
		idx.byDomain[s.Domain] = append(idx.byDomain[s.Domain], s)
	}

	for _, a := range articles {
		if _, dup := idx.byArticle[a.Article]; dup {
			return nil, fmt.Errorf("statutes: duplicate article %s", a.Article)
		}
		idx.byArticle[a.Article] = a
	}

	return idx, nil
}

// Section looks up one statute section by code and identifier string.
func (idx *Index) Section(code, id string) (domain.StatuteSection, error) {
	sectionID, err := ParseSectionID(id)
	if err != nil {
		return domain.StatuteSection{}, err
	}
	s, ok := idx.byKey[sectionKey(code, sectionID)]
	if !ok {
		return domain.StatuteSection{}, fmt.Errorf("%w: %s %s", ErrNotFound, code, sectionID)
	}
	return s, nil
}

// Article looks up one constitutional article.
func (idx *Index) Article(article string) (domain.ConstitutionArticle, error) {
	a, ok := idx.byArticle[strings.TrimSpace(strings.ToUpper(article))]
	if !ok {
		return domain.ConstitutionArticle{}, fmt.Errorf("%w: article %s", ErrNotFound, article)
	}
	return a, nil
}

// SectionsFor returns sections matching the resolved domain, preferring
// entries tagged with the resolved subdomain when any exist.
func (idx *Index) SectionsFor(domainLabel, subdomain string) []domain.StatuteSection {
	all := idx.byDomain[domainLabel]
	if subdomain == "" || subdomain == domain.SubdomainGeneral || subdomain == domain.SubdomainUnclassified {
		return append([]domain.StatuteSection(nil), all...)
	}

	var scoped []domain.StatuteSection
	for _, s := range all {
		for _, sd := range s.Subdomains {
			if sd == subdomain {
				scoped = append(scoped, s)
				break
			}
		}
	}
	if len(scoped) > 0 {
		return scoped
	}
	return append([]domain.StatuteSection(nil), all...)
}

// ArticlesFor returns constitutional articles tagged with the domain.
func (idx *Index) ArticlesFor(domainLabel string) []domain.ConstitutionArticle {
	var out []domain.ConstitutionArticle
	for _, a := range idx.articles {
		for _, d := range a.Domains {
			if d == domainLabel {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// AllSections returns every section in table order. Used for the empty-query
// enumerate-all fallback.
func (idx *Index) AllSections() []domain.StatuteSection {
	return append([]domain.StatuteSection(nil), idx.sections...)
}

// AllArticles returns every article in table order.
func (idx *Index) AllArticles() []domain.ConstitutionArticle {
	return append([]domain.ConstitutionArticle(nil), idx.articles...)
}

func sectionKey(code string, id domain.SectionID) string {
	return strings.ToLower(code) + ":" + id.String()
}
