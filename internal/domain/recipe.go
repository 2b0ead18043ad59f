package domain

// Recipe is a "Les Coulisses" story shown on the public site. Pure content,
// no relationships.
type Recipe struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}
