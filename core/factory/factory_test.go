package factory

import (
	"strings"
	"testing"
)

type sink struct{ Port int }

type sinkConf struct {
	Port    int  `json:"port"`
	Enabled bool `json:"enabled"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sink]()
	if err := reg.Register("prom", func(conf map[string]any) (*sink, error) {
		var c sinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sink{Port: c.Port}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "prom", Conf: map[string]any{"port": 9100}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Port != 9100 {
		t.Fatalf("expected 9100 got %d", inst.Port)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("nil", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	_, err := reg.Create(ModuleConfig{Type: "y"})
	if err == nil {
		t.Fatal("expected unknown type error")
	}
	if !strings.Contains(err.Error(), "known: x") {
		t.Fatalf("error should list known types: %v", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry[int]()
	for _, n := range []string{"influx", "nop", "prometheus"} {
		if err := reg.Register(n, func(map[string]any) (int, error) { return 0, nil }); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
	got := strings.Join(reg.Names(), ",")
	if got != "influx,nop,prometheus" {
		t.Fatalf("unexpected names %s", got)
	}
}

func TestDecode_WeakTypes(t *testing.T) {
	var c sinkConf
	if err := Decode(map[string]any{"port": "9200", "enabled": "true"}, &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Port != 9200 || !c.Enabled {
		t.Fatalf("unexpected decode result %+v", c)
	}
}
