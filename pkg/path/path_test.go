package path

import (
	"errors"
	"testing"
)

func TestCreate_IsRoot(t *testing.T) {
	p := Create()
	if !p.IsRootPath() {
		t.Error("Create() should yield the root path")
	}
	if p.Len() != 1 {
		t.Errorf("root path Len() = %d, want 1", p.Len())
	}
	if got := p.String(); got != "" {
		t.Errorf("root path String() = %q, want \"\"", got)
	}

	p.AddNode(NewPropertyNode("name"))
	if p.IsRootPath() {
		t.Error("path should not be root after AddNode")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d after replacing placeholder, want 1", p.Len())
	}
}

func TestAddProperty_CollapsesGenericElement(t *testing.T) {
	// Given leaf state "generic element of list at index 2", a following
	// AddProperty must collapse into a single step "list[2].field", not
	// emit "list[2][].field".
	p := Create()
	p.AddProperty("list")
	p.AddNode(NodeAtIndex(2))
	p.AddProperty("field")

	if got := p.String(); got != "list[2].field" {
		t.Errorf("String() = %q, want %q", got, "list[2].field")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (collapsed step)", p.Len())
	}

	leaf := p.Leaf()
	if leaf.Kind() != KindProperty {
		t.Errorf("leaf kind = %s, want property", leaf.Kind())
	}
	if index, ok := leaf.Index(); !ok || index != 2 {
		t.Errorf("leaf index = %d (%t), want 2", index, ok)
	}
}

func TestAddProperty_CrossParameterMarker(t *testing.T) {
	p := Create()
	p.AddProperty("placeOrder")
	p.AddProperty(CrossParameterName)

	leaf := p.Leaf()
	if leaf.Kind() != KindCrossParameter {
		t.Errorf("leaf kind = %s, want cross-parameter", leaf.Kind())
	}
	if got := p.String(); got != "placeOrder.<cross-parameter>" {
		t.Errorf("String() = %q", got)
	}
}

func TestRemoveLeaf(t *testing.T) {
	t.Run("root path fails", func(t *testing.T) {
		p := Create()
		if _, err := p.RemoveLeaf(); !errors.Is(err, ErrNoLeaf) {
			t.Errorf("RemoveLeaf on root = %v, want ErrNoLeaf", err)
		}
	})

	t.Run("empty path fails", func(t *testing.T) {
		p := &Path{}
		if _, err := p.RemoveLeaf(); !errors.Is(err, ErrNoLeaf) {
			t.Errorf("RemoveLeaf on empty path = %v, want ErrNoLeaf", err)
		}
	})

	t.Run("single real node returns to root state", func(t *testing.T) {
		p := Create()
		p.AddProperty("name")

		n, err := p.RemoveLeaf()
		if err != nil {
			t.Fatalf("RemoveLeaf error: %v", err)
		}
		if n.Name() != "name" {
			t.Errorf("removed node name = %q, want %q", n.Name(), "name")
		}
		if !p.IsRootPath() {
			t.Error("path should be root-equivalent after removing its only real node")
		}
	})

	t.Run("pop restores previous leaf", func(t *testing.T) {
		p := Create()
		p.AddProperty("a")
		p.AddProperty("b")

		if _, err := p.RemoveLeaf(); err != nil {
			t.Fatalf("RemoveLeaf error: %v", err)
		}
		if got := p.String(); got != "a" {
			t.Errorf("String() = %q, want %q", got, "a")
		}
	})
}

func TestWithoutLeaf(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		want   string
		wantOK bool
	}{
		{name: "two nodes", expr: "a.b", want: "a", wantOK: true},
		{name: "three nodes", expr: "a.b.c", want: "a.b", wantOK: true},
		{name: "single node", expr: "a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.expr)
			parent, ok := p.WithoutLeaf()
			if ok != tt.wantOK {
				t.Fatalf("WithoutLeaf ok = %t, want %t", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := parent.String(); got != tt.want {
				t.Errorf("WithoutLeaf = %q, want %q", got, tt.want)
			}
			// The parent is an independent copy.
			parent.AddProperty("mutated")
			if got := p.String(); got != tt.expr {
				t.Errorf("mutating parent changed original: %q", got)
			}
		})
	}

	t.Run("root", func(t *testing.T) {
		if _, ok := Create().WithoutLeaf(); ok {
			t.Error("WithoutLeaf on root should report no parent")
		}
	})
}

func TestIsSubPathOf(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		ancestor string
		want     bool
	}{
		{name: "proper prefix", path: "a.b.c", ancestor: "a.b", want: true},
		{name: "equal paths", path: "a.b", ancestor: "a.b", want: true},
		{name: "longer ancestor", path: "a.b", ancestor: "a.b.c", want: false},
		{name: "diverging names", path: "a.x.c", ancestor: "a.b", want: false},
		{name: "indexed ancestor matches same index", path: "a[2].b", ancestor: "a[2]", want: true},
		{name: "indexed ancestor rejects other index", path: "a[3].b", ancestor: "a[2]", want: false},
		{name: "wildcard element matches any index", path: "a[3].b", ancestor: "a[]", want: true},
		{name: "wildcard element matches key", path: "a[k].b", ancestor: "a[]", want: true},
		{name: "plain ancestor rejects indexed node", path: "a[2].b", ancestor: "a.b", want: false},
		{name: "keyed ancestor matches same key", path: "a[k].b", ancestor: "a[k]", want: true},
		{name: "keyed ancestor rejects other key", path: "a[j].b", ancestor: "a[k]", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.path)
			ancestor := mustParse(t, tt.ancestor)
			if got := p.IsSubPathOf(ancestor); got != tt.want {
				t.Errorf("%q.IsSubPathOf(%q) = %t, want %t", tt.path, tt.ancestor, got, tt.want)
			}
		})
	}

	t.Run("root matches everything", func(t *testing.T) {
		for _, expr := range []string{"a", "a.b", "a[2].b"} {
			if !mustParse(t, expr).IsSubPathOf(Create()) {
				t.Errorf("%q should be a sub-path of root", expr)
			}
		}
		if !Create().IsSubPathOf(Create()) {
			t.Error("root should be a sub-path of root")
		}
	})
}

func TestPathEqualityAndHash(t *testing.T) {
	build := func() *Path {
		p := Create()
		p.AddProperty("orders")
		p.AddNode(NodeAtIndex(2))
		p.AddProperty("amount")
		return p
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("paths built via equal operation sequences should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal paths should hash equal")
	}

	b.AddProperty("currency")
	if a.Equal(b) {
		t.Error("paths of different length should not be equal")
	}

	c := mustParse(t, "orders[3].amount")
	if a.Equal(c) {
		t.Error("paths with different indices should not be equal")
	}
}

func TestCopy(t *testing.T) {
	p := mustParse(t, "orders[2].amount")
	c := Copy(p)

	if !p.Equal(c) {
		t.Error("copy should equal the original")
	}
	c.Leaf().SetName("total")
	if p.Equal(c) {
		t.Error("copy must not share nodes with the original")
	}
	if Copy(nil) != nil {
		t.Error("Copy(nil) should be nil")
	}
}

func mustParse(t *testing.T, expr string) *Path {
	t.Helper()
	p, err := Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", expr, err)
	}
	return p
}
