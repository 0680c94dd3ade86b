package menu

import "ambalaje-storefront/internal/shopify"

// RawItem is one entry of a Storefront API menu, children included.
type RawItem struct {
	Title string    `json:"title"`
	URL   string    `json:"url"`
	Items []RawItem `json:"items"`
}

// Node is a navigational entry with its canonical storefront path.
type Node struct {
	Title    string         `json:"title"`
	Path     string         `json:"path"`
	Image    *shopify.Image `json:"image,omitempty"`
	Children []Node         `json:"children"`
}

// Segment is the last element of the node's path, empty for "/".
func (n Node) Segment() string {
	return lastSegment(n.Path)
}

func (n Node) HasChildren() bool {
	return len(n.Children) > 0
}
