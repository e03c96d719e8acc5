package harness

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/exp/maps"

	"github.com/Taxel/everybody-codes-2024/parse"
	"github.com/Taxel/everybody-codes-2024/solution"
)

var (
	// ErrUnknownDay is returned when a requested day has no registered solver.
	ErrUnknownDay = errors.New("harness: unknown day")
	// ErrBadPart is returned for a part outside 1..3.
	ErrBadPart = errors.New("harness: part must be 1, 2 or 3")
	// ErrMissingInput is returned by Load when the input file is absent.
	ErrMissingInput = errors.New("harness: missing input")
	// ErrFailed is returned by Run when at least one part failed.
	ErrFailed = errors.New("harness: one or more parts failed")
)

// Status classifies the outcome of one part.
type Status int

const (
	Solved Status = iota
	NoSolution
	NoInput
	Failed
)

// Outcome is the result of running one part.
type Outcome struct {
	Day, Part int
	Status    Status
	Answer    string
	Elapsed   time.Duration
	Err       error
}

// String renders the outcome as an answer line without a trailing newline.
func (o Outcome) String() string {
	prefix := fmt.Sprintf("Day %d Part %d: ", o.Day, o.Part)
	switch o.Status {
	case Solved:
		return fmt.Sprintf("%s%s - elapsed: %v", prefix, o.Answer, o.Elapsed)
	case NoSolution:
		return prefix + "No solution"
	case NoInput:
		return prefix + "No input"
	default:
		return fmt.Sprintf("%sFailed: %v", prefix, o.Err)
	}
}

// InputPath returns the file name for (day, part), e.g. "07_p2.txt".
func InputPath(day, part int) string {
	return fmt.Sprintf("%02d_p%d.txt", day, part)
}

// Load reads and normalises the input for (day, part) from fsys.
func Load(fsys fs.FS, day, part int) (string, error) {
	data, err := fs.ReadFile(fsys, InputPath(day, part))
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrap(ErrMissingInput, InputPath(day, part))
	}
	if err != nil {
		return "", errors.Wrapf(err, "harness: reading %s", InputPath(day, part))
	}
	return parse.Normalize(string(data)), nil
}

// Runner holds the registry of day solvers.
type Runner struct {
	days map[int]solution.Day
	out  io.Writer
	now  func() time.Time
}

// New registers days and writes answer lines to out.
func New(out io.Writer, days ...solution.Day) *Runner {
	r := &Runner{days: make(map[int]solution.Day, len(days)), out: out, now: time.Now}
	for _, d := range days {
		r.days[d.Number()] = d
	}
	return r
}

// Days returns the registered day numbers in ascending order.
func (r *Runner) Days() []int {
	ds := maps.Keys(r.days)
	slices.Sort(ds)
	return ds
}

// Run executes the configured days and parts, reading inputs from cfg.InputDir.
func (r *Runner) Run(cfg Config) error {
	return r.RunFS(os.DirFS(cfg.InputDir), cfg)
}

// RunFS is Run with an explicit input file system.
func (r *Runner) RunFS(fsys fs.FS, cfg Config) error {
	days := cfg.Days
	if len(days) == 0 {
		days = r.Days()
	}
	parts := cfg.Parts
	if len(parts) == 0 {
		parts = []int{1, 2, 3}
	}
	for _, d := range days {
		if _, ok := r.days[d]; !ok {
			return errors.Wrapf(ErrUnknownDay, "day %d", d)
		}
	}
	for _, p := range parts {
		if p < 1 || p > 3 {
			return errors.Wrapf(ErrBadPart, "part %d", p)
		}
	}

	failed := 0
	for _, d := range days {
		for _, p := range parts {
			o := r.RunPart(fsys, d, p)
			if o.Status == Failed {
				failed++
			}
			if _, err := fmt.Fprintln(r.out, o); err != nil {
				return errors.Wrap(err, "harness: writing answer")
			}
		}
	}
	if failed > 0 {
		return errors.Wrapf(ErrFailed, "%d failed", failed)
	}

	return nil
}

// RunPart loads and solves a single part. The day must be registered.
func (r *Runner) RunPart(fsys fs.FS, day, part int) Outcome {
	o := Outcome{Day: day, Part: part}
	sol, ok := r.days[day]
	if !ok {
		o.Status, o.Err = Failed, errors.Wrapf(ErrUnknownDay, "day %d", day)
		return o
	}

	input, err := Load(fsys, day, part)
	switch {
	case errors.Is(err, ErrMissingInput):
		o.Status = NoInput
		return o
	case err != nil:
		o.Status, o.Err = Failed, err
		klog.Errorf("day %d part %d: %v", day, part, err)
		return o
	}

	klog.V(2).Infof("day %d part %d: %d bytes of input", day, part, len(input))
	start := r.now()
	answer, err := sol.Solve(part, input)
	o.Elapsed = r.now().Sub(start)
	switch {
	case errors.Is(err, solution.ErrNotImplemented):
		o.Status = NoSolution
	case err != nil:
		o.Status, o.Err = Failed, err
		klog.Errorf("day %d part %d: %v", day, part, err)
	default:
		o.Status, o.Answer = Solved, answer
	}

	return o
}
