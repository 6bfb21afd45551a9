package cruncher

import "slices"

// Category is one hidden-category puzzle: a fixed vocabulary of terms and
// the subset the player must crunch.
type Category struct {
	ID     string
	Title  string
	Prompt string
	Terms  []string // full vocabulary drawn onto the board
	Valid  []string // winning subset of Terms
}

// IsValid reports whether label belongs to the winning subset.
func (c Category) IsValid(label string) bool {
	return slices.Contains(c.Valid, label)
}

// Categories lists the built-in categories. Each vocabulary has 12 terms,
// 6 of them valid.
var Categories = []Category{
	{
		ID:     "cruncher",
		Title:  "Term Cruncher",
		Prompt: "Animals with fur",
		Terms: []string{
			"frog", "pug", "tabby", "quail", "chimp", "whale",
			"newt", "goat", "eagle", "ferret", "crab", "koala",
		},
		Valid: []string{"pug", "tabby", "chimp", "goat", "ferret", "koala"},
	},
	{
		ID:     "cruncher_wings",
		Title:  "Term Cruncher: Wings",
		Prompt: "Animals with wings",
		Terms: []string{
			"frog", "pug", "quail", "owl", "newt", "whale",
			"eagle", "bat", "crab", "moth", "koala", "duck",
		},
		Valid: []string{"quail", "owl", "eagle", "bat", "moth", "duck"},
	},
	{
		ID:     "cruncher_sea",
		Title:  "Term Cruncher: Sea",
		Prompt: "Animals of the sea",
		Terms: []string{
			"whale", "pug", "crab", "tabby", "squid", "goat",
			"eel", "koala", "seal", "eagle", "shark", "frog",
		},
		Valid: []string{"whale", "crab", "squid", "eel", "seal", "shark"},
	},
}

// CategoryByID looks up a built-in category.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
