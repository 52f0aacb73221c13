package lsp

import "testing"

func TestDocuments(t *testing.T) {
	docs := NewDocuments()
	uri := "file:///tmp/flow.mmd"

	docs.Open(uri, "graph TD", 1)
	if got, ok := docs.Get(uri); !ok || got.Text != "graph TD" || got.Version != 1 {
		t.Fatalf("Get after Open = %+v, %v", got, ok)
	}

	if !docs.Update(uri, "graph TD\n  A", 3) {
		t.Error("Update(version 3) = false, want true")
	}
	if docs.Update(uri, "graph LR", 2) {
		t.Error("Update(version 2) after version 3 = true, want false")
	}
	if got, _ := docs.Get(uri); got.Text != "graph TD\n  A" {
		t.Errorf("Text = %q, want %q", got.Text, "graph TD\n  A")
	}

	docs.Save(uri, "graph TD\n  A --> B")
	if got, _ := docs.Get(uri); got.Text != "graph TD\n  A --> B" || got.Version != 3 {
		t.Errorf("after Save = %+v", got)
	}

	docs.Close(uri)
	if _, ok := docs.Get(uri); ok {
		t.Error("Get after Close found the document")
	}
	if docs.Len() != 0 {
		t.Errorf("Len = %d, want 0", docs.Len())
	}
}

func TestDocumentsGetReturnsCopy(t *testing.T) {
	docs := NewDocuments()
	docs.Open("a", "one", 1)
	got, _ := docs.Get("a")
	got.Text = "changed"
	if again, _ := docs.Get("a"); again.Text != "one" {
		t.Errorf("stored text = %q, want %q", again.Text, "one")
	}
}
