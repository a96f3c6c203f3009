// Command voxlath measures phase connectivity and percolation in 3D
// microstructure images.
//
//	voxlath analyze paste.img --phase 0 --phase C-S-H --workers 4
//	voxlath stats paste.img
//	voxlath generate slab --size 50,50,50 --axis y --out slab.img
//	voxlath history --db runs.db
//	voxlath show <run-id> --db runs.db --format json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command tree and returns the process exit status: 0 on
// success, 1 after printing the error to stderr.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "voxlath:", err)
		return 1
	}

	return 0
}
