package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/pkg/paths"
	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"
)

// NewLogsCmd creates the `logs` command.
func NewLogsCmd() *cobra.Command {
	var (
		component string
		lines     int
		follow    bool
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the file log written by playground",
		Long: `Show the most recent log file written by the file sink. The sink is
enabled with the logging section of playground.yml:

  logging:
    file:
      enabled: true

Examples:
  playground logs --tail 50
  playground logs -f --component watcher`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := latestLogFile(paths.LogDir(), component)
			if err != nil {
				return err
			}
			if file == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "No log files in %s\n", paths.LogDir())
				return nil
			}

			recent, err := readTail(file, lines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOutput := cli.GetOptions(cmd).JSONOutput
			emit := func(l string) {
				if !jsonOutput {
					fmt.Fprintln(out, l)
					return
				}
				// Lines are already JSON with the json preset; others are wrapped.
				if json.Valid([]byte(l)) {
					fmt.Fprintln(out, l)
					return
				}
				data, _ := json.Marshal(map[string]string{"file": file, "line": l})
				fmt.Fprintln(out, string(data))
			}
			for _, l := range recent {
				emit(l)
			}
			if !follow {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return followFile(ctx, file, emit)
		},
	}
	cmd.Flags().StringVar(&component, "component", "", "Only consider logs of this component")
	cmd.Flags().IntVar(&lines, "tail", -1, "Number of lines to show from the end (default: all)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	return cmd
}

// followFile calls fn for every line appended to path until ctx is done.
func followFile(ctx context.Context, path string, fn func(string)) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:   stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return fmt.Errorf("cannot follow %s: %w", path, err)
	}
	defer t.Cleanup()
	defer t.Stop()

	for {
		select {
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				continue
			}
			fn(line.Text)
		case <-ctx.Done():
			return nil
		}
	}
}

// latestLogFile returns the newest <component>-<date>.log in dir, or "" when
// there is none.
func latestLogFile(dir, component string) (string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read log directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var files []candidate
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".log") {
			continue
		}
		if component != "" && !strings.HasPrefix(name, component+"-") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{filepath.Join(dir, name), info.ModTime().UnixNano()})
	}
	if len(files) == 0 {
		return "", nil
	}
	sort.Slice(files, func(i, j int) bool { return files[i].modTime > files[j].modTime })
	return files[0].path, nil
}

// readTail returns the last n lines of path, or every line when n < 0.
func readTail(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n >= 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	return lines, scanner.Err()
}
