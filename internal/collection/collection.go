package collection

import (
	"fmt"
	"sort"
	"strings"

	"faculty-directory/internal/common"
	"faculty-directory/internal/diagnostic"
	"faculty-directory/internal/member"
)

// Collection is the ordered, id-unique set of members.
type Collection struct {
	members []member.Member
	diags   *diagnostic.Diagnostics
}

// Assemble resolves id collisions in encounter order and sorts the
// survivors. Collision diagnostics are added to diags, which the
// collection keeps as its own diagnostics list.
func Assemble(accepted []*member.Candidate, diags *diagnostic.Diagnostics) *Collection {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	owners := make(map[string]string, len(accepted))
	members := make([]member.Member, 0, len(accepted))

	for _, c := range accepted {
		if c == nil {
			continue
		}

		m := c.Member

		id, ok := claim(owners, c, diags)
		if !ok {
			continue
		}

		m.ID = id
		members = append(members, m)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return less(&members[i], &members[j])
	})

	return &Collection{members: members, diags: diags}
}

// claim reserves an id for c. Derived ids that collide fall back to the
// file stem, then to the stem with a numeric suffix. Explicit and
// email ids are never rewritten; claim reports false when c must be
// excluded.
func claim(owners map[string]string, c *member.Candidate, diags *diagnostic.Diagnostics) (string, bool) {
	src := c.Label()
	id := c.Member.ID

	prev, taken := owners[id]
	if !taken {
		owners[id] = src
		return id, true
	}

	if c.IDSource == member.IDFromName || c.IDSource == member.IDFromFilename {
		alt := fallbackID(owners, id, c.File.Stem)
		owners[alt] = src
		diags.AddWarning(diagnostic.KindNormalization, "id_fallback",
			fmt.Sprintf("id %q already used by %s; using %q from the file name", id, prev, alt),
			src, member.FieldID)

		return alt, true
	}

	diags.AddError(diagnostic.KindIntegrity, "duplicate_id",
		fmt.Sprintf("id %q already used by %s; record excluded", id, prev),
		src, member.FieldID)

	return "", false
}

// fallbackID returns the first free id among the slugified stem and
// the stem followed by -2, -3 and so on.
func fallbackID(owners map[string]string, id, stem string) string {
	base := member.Slugify(stem)
	if base == "" {
		base = id
	}

	if _, taken := owners[base]; !taken {
		return base
	}

	for n := 2; ; n++ {
		alt := fmt.Sprintf("%s-%d", base, n)
		if _, taken := owners[alt]; !taken {
			return alt
		}
	}
}

// SortKey returns the ordering key for a name: the case-folded last
// whitespace-delimited token and the case-folded full name.
func SortKey(name string) (last, full string) {
	full = strings.ToLower(strings.TrimSpace(name))
	last, _ = common.Last(strings.Fields(full))

	return last, full
}

func less(a, b *member.Member) bool {
	al, af := SortKey(a.Name)
	bl, bf := SortKey(b.Name)

	if al != bl {
		return al < bl
	}

	return af < bf
}

// Members returns the ordered members. The slice is a copy.
func (c *Collection) Members() []member.Member {
	out := make([]member.Member, len(c.members))
	copy(out, c.members)

	return out
}

// Len returns the number of members.
func (c *Collection) Len() int {
	return len(c.members)
}

// IsEmpty reports whether no member survived.
func (c *Collection) IsEmpty() bool {
	return common.IsEmpty(c.members)
}

// Diagnostics returns the run's diagnostics list.
func (c *Collection) Diagnostics() *diagnostic.Diagnostics {
	return c.diags
}
