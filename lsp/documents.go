package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is the last full text the client sent for a URI.
type Document struct {
	URI     protocol.DocumentUri
	Text    string
	Version protocol.Integer
}

// Documents holds the open documents of one client session.
type Documents struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*Document
}

func NewDocuments() *Documents {
	return &Documents{
		docs: make(map[protocol.DocumentUri]*Document),
	}
}

func (d *Documents) Open(uri protocol.DocumentUri, text string, version protocol.Integer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.docs[uri] = &Document{URI: uri, Text: text, Version: version}
}

// Update replaces the text of uri. Out-of-order versions are ignored so a
// stale notification never overwrites a newer edit.
func (d *Documents) Update(uri protocol.DocumentUri, text string, version protocol.Integer) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.docs[uri]
	if !ok {
		d.docs[uri] = &Document{URI: uri, Text: text, Version: version}
		return true
	}
	if version < doc.Version {
		return false
	}
	doc.Text = text
	doc.Version = version
	return true
}

// Save stores text without touching the version.
func (d *Documents) Save(uri protocol.DocumentUri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if doc, ok := d.docs[uri]; ok {
		doc.Text = text
		return
	}
	d.docs[uri] = &Document{URI: uri, Text: text}
}

func (d *Documents) Close(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.docs, uri)
}

// Get returns a copy of the document so callers can read it without
// holding the lock.
func (d *Documents) Get(uri protocol.DocumentUri) (Document, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc, ok := d.docs[uri]
	if !ok {
		return Document{}, false
	}
	return *doc, true
}

func (d *Documents) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.docs)
}
