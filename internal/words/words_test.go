package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	text := "Crane\n\nslate\n  TRACE \ncrane\nto\nlonger\r\nspeed\r\n"
	l := Parse(text, 5)

	want := []string{"crane", "slate", "trace", "speed"}
	if diff := cmp.Diff(want, l.Words()); diff != "" {
		t.Errorf("unexpected words (-want +got)\n%s", diff)
	}
	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
	if l.Length() != 5 {
		t.Errorf("Length() = %d, want 5", l.Length())
	}
}

func TestParseOtherLength(t *testing.T) {
	l := Parse("cat\ndog\nhorse\nCAT", 3)
	if diff := cmp.Diff([]string{"cat", "dog"}, l.Words()); diff != "" {
		t.Errorf("unexpected words (-want +got)\n%s", diff)
	}
}

func TestContains(t *testing.T) {
	l := Parse("crane\nslate", 5)
	cases := []struct {
		word string
		want bool
	}{
		{"crane", true},
		{"CRANE", true},
		{"Slate", true},
		{"trace", false},
		{"", false},
		{"cran", false},
	}
	for _, c := range cases {
		if got := l.Contains(c.word); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestRandomElement(t *testing.T) {
	l := Parse("crane\nslate\ntrace", 5)
	for i := 0; i < 50; i++ {
		w := l.RandomElement()
		if !l.Contains(w) {
			t.Fatalf("RandomElement() = %q, not a member", w)
		}
	}
}

func TestRandomElementEmpty(t *testing.T) {
	l := Parse("", 5)
	if got := l.RandomElement(); got != "" {
		t.Errorf("RandomElement() on empty list = %q, want empty", got)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestAt(t *testing.T) {
	l := Parse("crane\nslate", 5)
	if got := l.At(1); got != "slate" {
		t.Errorf("At(1) = %q, want slate", got)
	}
	if got := l.At(2); got != "" {
		t.Errorf("At(2) = %q, want empty", got)
	}
	if got := l.At(-1); got != "" {
		t.Errorf("At(-1) = %q, want empty", got)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	l := Parse("crane\nslate", 5)
	ws := l.Words()
	ws[0] = "xxxxx"
	if l.Contains("xxxxx") || l.At(0) != "crane" {
		t.Error("mutating Words() result changed the list")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestLoadReadErrorYieldsEmpty(t *testing.T) {
	l := Load(failingReader{}, 5)
	if l == nil || l.Len() != 0 {
		t.Fatalf("Load with failing reader: got %v, want empty list", l)
	}
}

func TestLoad(t *testing.T) {
	l := Load(strings.NewReader("crane\nslate\n"), 5)
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestLoadOverlongLine(t *testing.T) {
	src := "crane\n" + strings.Repeat("x", 200*1024) + "\nslate"
	l := Load(strings.NewReader(src), 5)
	if l.Len() != 2 || !l.Contains("crane") || !l.Contains("slate") {
		t.Errorf("Load with overlong line = %v, want [crane slate]", l.Words())
	}
}

func TestLoadFileMissing(t *testing.T) {
	l := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), 5)
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("Crane\nslate\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Open(path, 5).Len(); got != 2 {
		t.Errorf("Open(file).Len() = %d, want 2", got)
	}
	if got := Open("", 5).Len(); got != Embedded(5).Len() {
		t.Errorf("Open(\"\").Len() = %d, want embedded size", got)
	}
}

func TestEmbedded(t *testing.T) {
	l := Embedded(5)
	if l.Len() == 0 {
		t.Fatal("embedded list is empty")
	}
	for _, w := range l.Words() {
		if len(w) != 5 || strings.ToLower(w) != w {
			t.Errorf("embedded word %q is not a lowercase 5-letter word", w)
		}
	}
	for _, w := range []string{"crane", "erase", "speed", "apple"} {
		if !l.Contains(w) {
			t.Errorf("embedded list missing %q", w)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	l := Embedded(5)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.Contains(l.RandomElement())
			}
		}()
	}
	wg.Wait()
}
