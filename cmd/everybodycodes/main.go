// Command everybodycodes runs the puzzle solvers against inputs in
// input/DD_pP.txt and prints one answer line per part.
//
//	everybodycodes            # every day, every part
//	everybodycodes 7 8        # selected days
//	everybodycodes --part 3 5 # one part of day 5
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

// initLogging registers klog's flags on fset and logs to stderr by default.
func initLogging(fset *flag.FlagSet) error {
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return fmt.Errorf("klog: %w", err)
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	return nil
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	if err := initLogging(fset); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cmd := newRootCmd(registry())
	cmd.PersistentFlags().AddGoFlagSet(fset)

	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
