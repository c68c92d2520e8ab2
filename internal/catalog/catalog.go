// Package catalog searches and groups banks and contacts for the pickers.
package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/go-petr/pet-transfer/internal/domain"
)

// FeaturedSection is the title of the section holding the featured bank.
const FeaturedSection = "Featured"

// DefaultFeaturedBank is the bank shown in FeaturedSection when none is configured.
const DefaultFeaturedBank = "UnionBank"

// Catalog groups picker entries in alphabetical sections.
type Catalog struct {
	featured string
	lang     language.Tag
}

// New returns a catalog featuring the bank named featured.
func New(featured string) *Catalog {
	if featured == "" {
		featured = DefaultFeaturedBank
	}

	return &Catalog{featured: featured, lang: language.Spanish}
}

type section struct {
	title string
	items []int
}

// group filters the indexes of the items whose name contains key, ignoring
// case, sorts them by name and groups them by sectionOf.
func (c *Catalog) group(n int, name func(i int) string, key string, sectionOf func(name string) string) []section {
	key = strings.ToLower(strings.TrimSpace(key))

	idx := make([]int, 0, n)

	for i := 0; i < n; i++ {
		if key == "" || strings.Contains(strings.ToLower(name(i)), key) {
			idx = append(idx, i)
		}
	}

	// A Collator is not safe for concurrent use.
	col := collate.New(c.lang, collate.Loose)
	sort.SliceStable(idx, func(a, b int) bool {
		return col.CompareString(name(idx[a]), name(idx[b])) < 0
	})

	var sections []section

	pos := make(map[string]int)

	for _, i := range idx {
		title := sectionOf(name(i))

		p, ok := pos[title]
		if !ok {
			p = len(sections)
			pos[title] = p
			sections = append(sections, section{title: title})
		}

		sections[p].items = append(sections[p].items, i)
	}

	return sections
}

func initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}

	return "#"
}

// SearchEBanks returns the banks whose name contains key grouped in sections.
// The featured bank gets its own section placed first.
func (c *Catalog) SearchEBanks(banks []domain.EBank, key string) []domain.BankSection {
	sections := c.group(len(banks), func(i int) string { return banks[i].Name }, key, func(name string) string {
		if name == c.featured {
			return FeaturedSection
		}

		return initial(name)
	})

	res := make([]domain.BankSection, 0, len(sections))

	for _, s := range sections {
		bs := domain.BankSection{Section: s.title, Items: make([]domain.EBank, 0, len(s.items))}
		for _, i := range s.items {
			bs.Items = append(bs.Items, banks[i])
		}

		if s.title == FeaturedSection {
			res = append([]domain.BankSection{bs}, res...)
			continue
		}

		res = append(res, bs)
	}

	return res
}

// SelectableEBanks keeps the banks having an active default provider.
func (c *Catalog) SelectableEBanks(banks []domain.EBank) []domain.EBank {
	res := make([]domain.EBank, 0, len(banks))

	for _, b := range banks {
		if b.Selectable() {
			res = append(res, b)
		}
	}

	return res
}

// SearchContacts returns the contacts whose display name contains key grouped in sections.
func (c *Catalog) SearchContacts(contacts []domain.Recipient, key string) []domain.RecipientSection {
	sections := c.group(len(contacts), func(i int) string { return contacts[i].DisplayName }, key, initial)

	res := make([]domain.RecipientSection, 0, len(sections))

	for _, s := range sections {
		rs := domain.RecipientSection{Section: s.title, Items: make([]domain.Recipient, 0, len(s.items))}
		for _, i := range s.items {
			rs.Items = append(rs.Items, contacts[i])
		}

		res = append(res, rs)
	}

	return res
}
