package s3sig

import (
	"reflect"
	"testing"
)

func TestParamsSorted(t *testing.T) {
	p := Params{"b": "2", "a": "1", "c": "3"}
	if got, want := p.Sorted(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestParamsSetGetDel(t *testing.T) {
	p := Params{}
	p.Set("k", "v")
	if got, ok := p.Get("k"); !ok || got != "v" {
		t.Errorf("Get(k) = %q, %v, want %q, true", got, ok, "v")
	}
	p.Del("k")
	if _, ok := p.Get("k"); ok {
		t.Error("Get(k) found a value after Del")
	}
}

func TestParamsCloneIsIndependent(t *testing.T) {
	p := Params{"k": "v"}
	c := p.clone()
	c.Set("k", "changed")
	if got, _ := p.Get("k"); got != "v" {
		t.Errorf("clone mutation leaked into original: p[k] = %q", got)
	}
}
