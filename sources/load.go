package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

const maxSourceSize = 16 << 20

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load reads program text from a file path, an http(s) URL, or "-" for stdin, and compiles it.
type Load func(ctx context.Context, ref string) (*bfvm.Program, error)

func (Module) Load(
	client HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (*bfvm.Program, error) {
		var (
			name string
			r    io.Reader
		)

		switch {

		case ref == "-":
			name = "stdin"
			r = stdin

		case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, fmt.Errorf("fetch %s: %w", ref, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return nil, fmt.Errorf("fetch %s: %s", ref, resp.Status)
			}
			name = programName(path.Base(resp.Request.URL.Path))
			r = resp.Body

		default:
			f, err := os.Open(ref)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			name = programName(filepath.Base(ref))
			r = f

		}

		lr := &io.LimitedReader{R: r, N: maxSourceSize + 1}
		ins, err := bfvm.TokenizeReader(lr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", ref, err)
		}
		if lr.N <= 0 {
			return nil, fmt.Errorf("read %s: source larger than %d bytes", ref, maxSourceSize)
		}

		program, err := bfvm.NewProgram(name, ins)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", ref, err)
		}
		logger.DebugContext(ctx, "program loaded",
			"name", name,
			"ref", ref,
			"instructions", len(ins),
		)
		return program, nil
	}
}

func programName(base string) string {
	name := strings.TrimSuffix(base, ".bf")
	if name == "" || name == "/" || name == "." {
		return "program"
	}
	return name
}
