package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-maskfield/pkg/formspec"
)

const lintDebounce = 100 * time.Millisecond

func (a *app) lintCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "lint [--watch] PATH...",
		Short: "Check form definitions",
		Long: `Load form files (or every form file under a directory) and report blank or
duplicate field names, unknown types, broken template overrides and seed
values that fail validation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := a.lintOnce(args)
			if !watch {
				if err != nil {
					return err
				}
				if count > 0 {
					return errValidationFailed
				}
				return nil
			}
			if err != nil {
				fmt.Fprintln(a.out, "error:", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watchLint(ctx, args)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-lint when a form file changes")
	return cmd
}

// lintOnce prints every violation and returns how many were found.
func (a *app) lintOnce(paths []string) (int, error) {
	forms, err := loadForms(paths)
	if err != nil {
		return 0, err
	}
	violations := formspec.Lint(forms...)
	for _, v := range violations {
		fmt.Fprintln(a.out, v.String())
	}
	a.logger.Info("lint: done", "forms", len(forms), "violations", len(violations))
	return len(violations), nil
}

func loadForms(paths []string) ([]formspec.Form, error) {
	var forms []formspec.Form
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			form, err := formspec.LoadFile(path)
			if err != nil {
				return nil, err
			}
			forms = append(forms, form)
			continue
		}
		found, err := formspec.LoadFS(os.DirFS(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for i := range found {
			found[i].Source = filepath.Join(path, found[i].Source)
		}
		forms = append(forms, found...)
	}
	return forms, nil
}

func (a *app) watchLint(ctx context.Context, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(paths) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	a.logger.Info("lint: watching", "paths", paths)

	relint := make(chan struct{}, 1)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !formspec.IsFormFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(lintDebounce, func() {
				select {
				case relint <- struct{}{}:
				default:
				}
			})

		case <-relint:
			fmt.Fprintf(a.out, "--- %s\n", time.Now().Format(time.TimeOnly))
			if _, err := a.lintOnce(paths); err != nil {
				fmt.Fprintln(a.out, "error:", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("lint: watcher error", "err", err)
		}
	}
}

// watchDirs returns the directories to watch: directories as given, files
// through their parent so editors that replace files are still seen.
func watchDirs(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	for _, path := range paths {
		dir := path
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	return out
}
