package browse

import "github.com/destination-europe/explorer-client/internal/domain"

// Origin tags which source collection a merged list came from.
type Origin string

const (
	OriginPersonal Origin = "personal"
	OriginPublic   Origin = "public"
)

// TaggedList is one entry of the merged list view.
type TaggedList struct {
	List   domain.List
	Origin Origin
}

// MergeLists combines the two independently-fetched collections into one
// tagged sequence: personal lists first, then public, each in fetch order.
// The merge is stable and deterministic; the synchronizer never re-sorts it.
func MergeLists(personal, public []domain.List) []TaggedList {
	out := make([]TaggedList, 0, len(personal)+len(public))
	for _, l := range personal {
		out = append(out, TaggedList{List: l, Origin: OriginPersonal})
	}
	for _, l := range public {
		out = append(out, TaggedList{List: l, Origin: OriginPublic})
	}
	return out
}
