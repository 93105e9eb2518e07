package executor

import (
	"fmt"
	"strings"

	bplus "StrIndex/bplustree"
	indexmanager "StrIndex/index_manager"

	"github.com/dustin/go-humanize"
)

// NotFound is printed for a search with no result.
const NotFound = "Null"

// FormatValues renders a key's values as v1,v2,...
func FormatValues(values []string) string {
	return strings.Join(values, ",")
}

// FormatEntries renders a range result as (k,v1),(k,v2),(k2,v3). Every value
// gets its own pair.
func FormatEntries(entries []bplus.Entry) string {
	if len(entries) == 0 {
		return NotFound
	}
	var sb strings.Builder
	first := true
	for _, e := range entries {
		for _, v := range e.Values {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteByte('(')
			sb.WriteString(e.Key)
			sb.WriteByte(',')
			sb.WriteString(v)
			sb.WriteByte(')')
		}
	}
	return sb.String()
}

func FormatStats(name string, s indexmanager.IndexStats) string {
	return fmt.Sprintf("index=%s order=%d height=%d nodes=%s (internal=%s leaf=%s) keys=%s values=%s cache_hits=%s cache_misses=%s",
		name,
		s.Order,
		s.Height,
		humanize.Comma(int64(s.InternalNodes+s.LeafNodes)),
		humanize.Comma(int64(s.InternalNodes)),
		humanize.Comma(int64(s.LeafNodes)),
		humanize.Comma(int64(s.Keys)),
		humanize.Comma(int64(s.Values)),
		humanize.Comma(int64(s.CacheHits)),
		humanize.Comma(int64(s.CacheMisses)),
	)
}
