package menu

import (
	"strings"

	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/slug"
	"ambalaje-storefront/internal/utils"
)

// allProductsTitle marks the menu entry that points back at its parent.
const allProductsTitle = "toate produsele"

var slugPrefixes = []string{"/collections/", "/pages/", "/policies/"}

// Builder turns raw menu items into Nodes. StoreURL is stripped from item
// URLs; when Collections is set, nodes whose slug is a collection handle get
// that collection's image.
type Builder struct {
	StoreURL    string
	Collections map[string]category.Collection
}

// Build converts items depth first, keeping upstream order at every level.
// parent holds the path segments of the enclosing node.
func (b Builder) Build(items []RawItem, parent []string) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		current := b.slugFor(item)
		segments := appendSegment(parent, current)

		node := Node{
			Title:    item.Title,
			Path:     joinPath(segments),
			Children: b.Build(item.Items, segments),
		}
		if current != "" && b.Collections != nil {
			if c, ok := b.Collections[current]; ok && c.Image != nil {
				img := *c.Image
				node.Image = &img
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (b Builder) slugFor(item RawItem) string {
	u := item.URL
	if b.StoreURL != "" {
		u = strings.TrimPrefix(u, b.StoreURL)
	}

	if slug.Contains(item.Title, allProductsTitle) {
		return ""
	}
	if u == "/" {
		return ""
	}
	for _, prefix := range slugPrefixes {
		if _, rest, ok := strings.Cut(u, prefix); ok {
			return slug.Slugify(rest)
		}
	}
	return slug.Slugify(item.Title)
}

// appendSegment returns a fresh slice so siblings never share a backing array.
func appendSegment(parent []string, s string) []string {
	return utils.NonEmpty(append(parent[:len(parent):len(parent)], s)...)
}

func joinPath(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

func lastSegment(p string) string {
	p = strings.TrimSuffix(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
