package ngramdex

import "github.com/RoaringBitmap/roaring/v2"

// prefixIndex is the auxiliary autocomplete structure: a rune trie over the
// corpus keys. Each node carries the set of document ids living below it as
// a compressed bitmap, so a prefix lookup is a walk plus one bitmap read.
// It shares DocumentIDs with the corpus but sits off the similarity path.
type prefixIndex struct {
	root *trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	docs     *roaring.Bitmap
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[rune]*trieNode),
		docs:     roaring.New(),
	}
}

func newPrefixIndex() *prefixIndex {
	return &prefixIndex{
		root: newTrieNode(),
	}
}

func (t *prefixIndex) insert(key string, d DocumentID) {
	node := t.root
	node.docs.Add(uint32(d))
	for _, r := range key {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
		node.docs.Add(uint32(d))
	}
}

// lookup returns the documents whose key starts with prefix, in ascending
// DocumentID order, or nil when no key does.
func (t *prefixIndex) lookup(prefix string) []DocumentID {
	node := t.root
	for _, r := range prefix {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	ids := make([]DocumentID, 0, node.docs.GetCardinality())
	it := node.docs.Iterator()
	for it.HasNext() {
		ids = append(ids, DocumentID(it.Next()))
	}
	return ids
}
