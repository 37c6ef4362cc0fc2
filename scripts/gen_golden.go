// Command gen_golden runs every golden end-to-end scenario concurrently
// against a freshly built interpreter binary and prints each one's
// captured output, so the fixtures asserted on in golden_test.go can be
// regenerated by eyeballing a diff rather than hand-tracing the
// interpreter.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Second, "overall timeout for every scenario")
	binPath := flag.String("bin", "", "path to a prebuilt tinybasic binary (default: go run the module root)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	results := make([]string, len(goldenScenarios))
	for i, sc := range goldenScenarios {
		i, sc := i, sc
		eg.Go(func() error {
			out, err := sc.run(ctx, *binPath)
			if err != nil {
				return fmt.Errorf("%v: %w", sc.name, err)
			}
			results[i] = fmt.Sprintf("--- %v ---\n%s\n", sc.name, out)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return goldenScenarios[order[i]].name < goldenScenarios[order[j]].name })
	for _, i := range order {
		fmt.Fprint(os.Stdout, results[i])
	}
}

type goldenScenario struct {
	name    string
	program string
}

// run feeds the scenario's program to a non-interactive interpreter run
// (its stdin is a pipe rather than a terminal, so the interpreter uses its
// plain stream port) and captures its stdout and stderr.
func (sc goldenScenario) run(ctx context.Context, binPath string) (string, error) {
	var cmd *exec.Cmd
	if binPath != "" {
		cmd = exec.CommandContext(ctx, binPath)
	} else {
		cmd = exec.CommandContext(ctx, "go", "run", ".")
	}
	cmd.Stdin = bytes.NewBufferString(sc.program)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

var goldenScenarios = []goldenScenario{
	{"S1-accumulator", "10 LET A = 0\n20 LET A = A + 1\n30 IF A < 5 THEN GOTO 20\n40 PRINT A\nRUN\n"},
	{"S2-precedence", "PRINT 2 + 3 * 4\nPRINT (2 + 3) * 4\nPRINT 0xFF & 0x0F\nPRINT 5 | 2 ^ 3\n"},
	{"S3-unary", "PRINT -3 * -4\nPRINT !0\n"},
	{"S4-editing", "10 PRINT \"A\"\n20 PRINT \"B\"\n10 PRINT \"C\"\n20\nLIST\n"},
	{"S5-if-goto", "10 IF 1 = 2 THEN GOTO 99\n20 PRINT \"ok\"\nRUN\n"},
	{"S6-radixes", "PRINT 0b1011 + 0x10 + 011\n"},
}
