package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

const sixtyFour = "++++++++[>++++++++<-]>."

func newScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		new(logs.Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sixty.bf")
	if err := os.WriteFile(path, []byte("# prints 64\n"+sixtyFour+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	newScope(t).Call(func(
		load Load,
	) {
		program, err := load(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if program.Name != "sixty" {
			t.Fatalf("got %s", program.Name)
		}
		if program.Instructions.String() != sixtyFour {
			t.Fatalf("got %s", program.Instructions)
		}

		if _, err := load(context.Background(), filepath.Join(t.TempDir(), "nope.bf")); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadStdin(t *testing.T) {
	newScope(t).Fork(
		func() Stdin {
			return strings.NewReader("[+")
		},
	).Call(func(
		load Load,
	) {
		_, err := load(context.Background(), "-")
		var parseErr *bfvm.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("got %v", err)
		}
		if parseErr.PC != 0 {
			t.Fatalf("got %d", parseErr.PC)
		}
	})
}

func TestLoadURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/programs/sixty.bf", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sixtyFour))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	newScope(t).Call(func(
		load Load,
	) {
		program, err := load(context.Background(), server.URL+"/programs/sixty.bf")
		if err != nil {
			t.Fatal(err)
		}
		if program.Name != "sixty" {
			t.Fatalf("got %s", program.Name)
		}
		out, err := program.Execute(context.Background(), "", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 1 || out[0] != 64 {
			t.Fatalf("got %v", out)
		}

		_, err = load(context.Background(), server.URL+"/missing.bf")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestIsLocalAddr(t *testing.T) {
	newScope(t).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		if !isLocalAddr("127.0.0.1:10000") {
			t.Fatal()
		}
		if !isLocalAddr("10.0.0.1") {
			t.Fatal()
		}
		if isLocalAddr("8.8.8.8:53") {
			t.Fatal()
		}
	})
}

func TestProxyAddrInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1080")
	newScope(t).Call(func(
		addr ProxyAddr,
	) {
		if addr != "" {
			t.Fatalf("got %s", addr)
		}
	})
}
