package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type state struct {
		PC     int
		Window []int64
		hidden bool
	}

	dict := func(kvs ...any) starlark.Value {
		d := starlark.NewDict(len(kvs) / 2)
		for i := 0; i < len(kvs); i += 2 {
			d.SetKey(kvs[i].(starlark.Value), kvs[i+1].(starlark.Value))
		}
		return d
	}

	cases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-1), starlark.MakeInt(-1)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"starlark value", starlark.String("x"), starlark.String("x")},
		{"cells", []int64{0, 64}, starlark.NewList([]starlark.Value{starlark.MakeInt(0), starlark.MakeInt(64)})},
		{"map", map[string]any{"pc": 3}, dict(starlark.String("pc"), starlark.MakeInt(3))},
		{"struct", state{PC: 1, Window: []int64{2}}, dict(
			starlark.String("PC"), starlark.MakeInt(1),
			starlark.String("Window"), starlark.NewList([]starlark.Value{starlark.MakeInt(2)}),
		)},
		{"pointer", &state{PC: 1}, dict(
			starlark.String("PC"), starlark.MakeInt(1),
			starlark.String("Window"), starlark.NewList(nil),
		)},
		{"nil pointer", (*state)(nil), starlark.None},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("got %v, want %v", actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(i int) int64 { return int64(i) })
		if v == nil || v.Type() == "" {
			t.Fatalf("got %v", v)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
