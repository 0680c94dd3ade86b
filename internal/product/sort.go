package product

type SortKey string

const (
	SortRelevance   SortKey = "RELEVANCE"
	SortBestSelling SortKey = "BEST_SELLING"
	SortCreatedAt   SortKey = "CREATED_AT"
	SortPrice       SortKey = "PRICE"
)

// SortSpec is one entry of the storefront's sort menu. The default entry has
// an empty Slug.
type SortSpec struct {
	Title   string  `json:"title"`
	Slug    string  `json:"slug"`
	SortKey SortKey `json:"sortKey"`
	Reverse bool    `json:"reverse"`
}

var DefaultSort = SortSpec{Title: "Relevanta", SortKey: SortRelevance}

var Sorting = []SortSpec{
	DefaultSort,
	{Title: "Populare", Slug: "trending-desc", SortKey: SortBestSelling},
	{Title: "Noi", Slug: "latest-desc", SortKey: SortCreatedAt, Reverse: true},
	{Title: "Pret: Crescator", Slug: "price-asc", SortKey: SortPrice},
	{Title: "Pret: Descrescator", Slug: "price-desc", SortKey: SortPrice, Reverse: true},
}

// FindSort returns the SortSpec for slug, falling back to DefaultSort.
func FindSort(slug string) SortSpec {
	if slug == "" {
		return DefaultSort
	}
	for _, s := range Sorting {
		if s.Slug == slug {
			return s
		}
	}
	return DefaultSort
}

// collectionSortKey translates a ProductSortKeys value to the
// ProductCollectionSortKeys enum, which spells CREATED_AT as CREATED.
func collectionSortKey(k SortKey) string {
	if k == SortCreatedAt {
		return "CREATED"
	}
	if k == "" {
		return string(SortRelevance)
	}
	return string(k)
}
