package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDirectoryMissing(t *testing.T) {
	p := NewProcessor()
	books, err := p.LoadDirectory(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("a missing directory must not be an error, got %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected no books, got %d", len(books))
	}
}

func TestLoadDirectoryEmpty(t *testing.T) {
	p := NewProcessor()
	books, err := p.LoadDirectory(t.TempDir())
	if err != nil {
		t.Fatalf("an empty directory must not be an error, got %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected no books, got %d", len(books))
	}
}

func TestLoadDirectorySampleBooks(t *testing.T) {
	dir := t.TempDir()
	if err := WriteSampleBooks(dir); err != nil {
		t.Fatalf("WriteSampleBooks() failed: %v", err)
	}

	p := NewProcessor()
	books, err := p.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory() failed: %v", err)
	}
	if len(books) != len(sampleBooks) {
		t.Fatalf("expected %d books, got %d", len(sampleBooks), len(books))
	}

	for _, b := range books {
		if b.Title == "" {
			t.Errorf("book %s has no title", b.Filename)
		}
		if b.SentenceCount < minBookSentences {
			t.Errorf("book %s has only %d sentences", b.Filename, b.SentenceCount)
		}
		if b.WordCount == 0 {
			t.Errorf("book %s has no words", b.Filename)
		}
	}

	stats := Summarize(books)
	if stats.NumBooks != len(books) || stats.TotalSentences == 0 {
		t.Errorf("unexpected summary: %+v", stats)
	}
	if len(TrainingSentences(books)) != stats.TotalSentences {
		t.Error("TrainingSentences() length must match the summary")
	}
}

func TestLoadDirectorySkipsUnusableFiles(t *testing.T) {
	dir := t.TempDir()

	// Too short to be a book.
	writeFile(t, dir, "short.txt", "Not nearly enough content.")
	// Wrong extension.
	writeFile(t, dir, "notes.md", strings.Repeat("A perfectly fine sentence lives here. ", 20))
	// Right extension but too few sentences survive the filter.
	writeFile(t, dir, "headings.txt", strings.Repeat("ALL UPPERCASE HEADINGS EVERYWHERE IN THIS FILE. ", 10))

	p := NewProcessor()
	books, err := p.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory() failed: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected all files to be skipped, got %d books", len(books))
	}
}

func TestReadTextFileLatin1Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	// "café" with a Latin-1 encoded é, which is invalid UTF-8.
	raw := []byte{'c', 'a', 'f', 0xE9}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	content, err := readTextFile(path)
	if err != nil {
		t.Fatalf("readTextFile() failed: %v", err)
	}
	if content != "café" {
		t.Errorf("readTextFile() = %q, want %q", content, "café")
	}
}

func TestExtractTitle(t *testing.T) {
	p := NewProcessor()

	testCases := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{
			name:     "from filename",
			filename: "harbor_of_glass.txt",
			want:     "Harbor Of Glass",
		},
		{
			name:     "dashes become spaces",
			filename: "the-long-voyage.txt",
			want:     "The Long Voyage",
		},
		{
			name:     "generic filename falls back to content",
			filename: "book.txt",
			content:  "The Secret Garden\n\nChapter 1\n\nIt began in spring.",
			want:     "The Secret Garden",
		},
		{
			name:     "uppercase title line accepted",
			filename: "text.txt",
			content:  "THE IRON ROAD\n\nIt began in winter.",
			want:     "The Iron Road",
		},
		{
			name:     "chapter lines are not titles",
			filename: "novel.txt",
			content:  "Chapter 1\nThe Hidden Valley\nIt began at dusk.",
			want:     "The Hidden Valley",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.extractTitle(tc.filename, tc.content); got != tc.want {
				t.Errorf("extractTitle(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
