package signal

// keySet is a disjoint-set forest over net keys. Each element carries a rank
// used to pick the surviving root: the lower rank (earlier registration) wins,
// so a merge never renames the net that was drawn first.
type keySet struct {
	parent map[string]string
	rank   map[string]int
}

func newKeySet() *keySet {
	return &keySet{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

// add makes key its own set with the given rank.
func (ks *keySet) add(key string, rank int) {
	if _, ok := ks.parent[key]; ok {
		return
	}
	ks.parent[key] = key
	ks.rank[key] = rank
}

// find returns the root of key's set with path compression.
func (ks *keySet) find(key string) string {
	root := key
	for ks.parent[root] != root {
		root = ks.parent[root]
	}

	for key != root {
		next := ks.parent[key]
		ks.parent[key] = root
		key = next
	}
	return root
}

// union joins the sets of a and b.
func (ks *keySet) union(a, b string) {
	ra, rb := ks.find(a), ks.find(b)
	if ra == rb {
		return
	}
	if ks.rank[rb] < ks.rank[ra] {
		ra, rb = rb, ra
	}
	ks.parent[rb] = ra
}
