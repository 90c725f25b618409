package corpus

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleBooks is a tiny bundled corpus used to bootstrap a deployment that
// has no books of its own yet.
var sampleBooks = []struct {
	filename string
	content  string
}{
	{
		filename: "harbor_of_glass.txt",
		content: `The Harbor of Glass

Chapter 1

The fishing town of Merrow Bay woke slowly under a silver fog. Old Captain Hale walked the pier every morning before the gulls arrived. He claimed the sea spoke to anyone patient enough to listen. Nobody in town believed him except his granddaughter Wren. She kept a notebook of everything the captain said about the tides. One entry described a harbor made entirely of glass far beyond the northern shoals. Wren decided she would find that harbor before the summer ended. She patched the sail of her small boat and studied the old charts by candlelight. The charts showed a passage between two drowned mountains. Her grandfather warned her that the passage shifted with the moon. On the first calm morning she slipped past the breakwater alone. The fog opened ahead of her like a curtain drawn by an unseen hand. Somewhere beyond the gray water, something bright was waiting.`,
	},
	{
		filename: "the_clockmaker_s_daughter.txt",
		content: `The Clockmaker's Daughter

Chapter 1

In the crooked lanes of Bellhaven stood a shop that sold nothing but time. The clockmaker Aldous Finch repaired watches for sailors and mayors alike. His daughter Ivy learned the trade by watching his steady hands. Every gear in the shop had a name and a story. One winter a stranger brought in a clock that ran backwards. Aldous studied it for three days without sleeping. He told Ivy the clock was older than the town itself. Ivy noticed the hands moved only when nobody watched them directly. She set a mirror on the workbench and caught the clock moving in the glass. The stranger returned at midnight to collect his property. He offered Aldous a single gold coin that never grew warm. Ivy hid the coin inside a hollow gear where it stays to this day. The backwards clock was never seen in Bellhaven again.`,
	},
	{
		filename: "letters_from_the_garden.txt",
		content: `Letters From the Garden

Chapter 1

My dear Margaret, the roses have finally opened along the east wall. The gardener says this spring is the kindest he can remember. I spend my mornings writing beneath the pear tree you planted. The village children come by to ask about the old stories. Yesterday I told them about the summer we dammed the creek. They refused to believe we were ever so young. The letters you send keep the house from feeling empty. I read them twice and then once more by lamplight. The doctor insists the country air is mending my lungs. I believe the garden deserves more credit than the air. Write soon and tell me about the city and its noise. Until then I remain faithfully in the company of the roses.`,
	},
}

// WriteSampleBooks writes the bundled sample corpus into dir, creating it if
// needed. Existing files with the same names are overwritten.
func WriteSampleBooks(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("corpus: could not create sample directory: %w", err)
	}
	for _, book := range sampleBooks {
		path := filepath.Join(dir, book.filename)
		if err := os.WriteFile(path, []byte(book.content), 0644); err != nil {
			return fmt.Errorf("corpus: could not write sample book %s: %w", book.filename, err)
		}
	}
	return nil
}
