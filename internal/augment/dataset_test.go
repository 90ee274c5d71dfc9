package augment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "id,anchor,target\n1,agbr test,kcl test\n2,dna,rna\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(ds.Header) != 3 || ds.Header[1] != "anchor" {
		t.Errorf("Header = %v, want [id anchor target]", ds.Header)
	}
	if len(ds.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(ds.Rows))
	}
	if ds.Column("target") != 2 {
		t.Errorf("Column(target) = %d, want 2", ds.Column("target"))
	}
	if ds.Column("missing") != -1 {
		t.Errorf("Column(missing) = %d, want -1", ds.Column("missing"))
	}
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadCSV("/nonexistent/in.csv"); err == nil {
			t.Fatal("expected error for missing file, got nil")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.csv")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := ReadCSV(path); err == nil {
			t.Fatal("expected error for headerless file, got nil")
		}
	})
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")

	in := &Dataset{
		Header: []string{"text", "label"},
		Rows:   [][]string{{"silver bromide test", "pos"}, {"dna, test", "neg"}},
	}
	if err := WriteCSV(path, in); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(out.Rows))
	}
	// Quoted comma survives the round trip.
	if out.Rows[1][0] != "dna, test" {
		t.Errorf("Rows[1][0] = %q, want %q", out.Rows[1][0], "dna, test")
	}
}
