package models

// FallbackCategory collects words listed before any category marker
const FallbackCategory = "sin_categoria"

// WordBank maps category names to their words, keeping first-appearance order.
// It is built once by the word source parser and only read afterwards.
type WordBank struct {
	order []string
	words map[string][]string
}

// NewWordBank creates an empty word bank
func NewWordBank() *WordBank {
	return &WordBank{
		words: make(map[string][]string),
	}
}

// AddCategory registers a category without words. Existing categories are left untouched.
func (b *WordBank) AddCategory(name string) {
	if _, ok := b.words[name]; ok {
		return
	}
	b.order = append(b.order, name)
	b.words[name] = []string{}
}

// AddWords appends words to a category, creating it when needed
func (b *WordBank) AddWords(category string, words ...string) {
	b.AddCategory(category)
	b.words[category] = append(b.words[category], words...)
}

// HasCategory reports whether the category exists, even if empty
func (b *WordBank) HasCategory(name string) bool {
	_, ok := b.words[name]
	return ok
}

// Categories returns all category names in first-appearance order
func (b *WordBank) Categories() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Words returns a copy of the words of a category, nil when it does not exist
func (b *WordBank) Words(category string) []string {
	words, ok := b.words[category]
	if !ok {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Playable returns the categories holding at least one word
func (b *WordBank) Playable() []string {
	var out []string
	for _, name := range b.order {
		if len(b.words[name]) > 0 {
			out = append(out, name)
		}
	}
	return out
}

// TotalWords counts words across every category
func (b *WordBank) TotalWords() int {
	total := 0
	for _, words := range b.words {
		total += len(words)
	}
	return total
}

// ToMap returns a plain copy of the bank
func (b *WordBank) ToMap() map[string][]string {
	out := make(map[string][]string, len(b.words))
	for name := range b.words {
		out[name] = b.Words(name)
	}
	return out
}
