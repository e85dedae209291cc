package ast

// ListBlock represents a bullet list. Every item of one list shares the
// same bullet character.
type ListBlock struct {
	Bullet rune
	Items  []ListItem
}

// ListItem represents a single list item. The body owns nested blocks:
// paragraphs, sublists, and anything else that may appear indented under
// the bullet.
type ListItem struct {
	Body *Document
}

// NewList creates a list with the given bullet character.
func NewList(bullet rune) *ListBlock {
	return &ListBlock{
		Bullet: bullet,
		Items:  make([]ListItem, 0),
	}
}

// AddItem appends an item with the given body.
func (l *ListBlock) AddItem(body *Document) {
	l.Items = append(l.Items, ListItem{Body: body})
}

// IsEmpty returns true if the list has no items.
func (l *ListBlock) IsEmpty() bool {
	return len(l.Items) == 0
}
