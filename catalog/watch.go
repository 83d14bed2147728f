package catalog

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the store whenever the catalog file is rewritten, so a
// data-pipeline deploy shows up without waiting out the cache TTL. the watch
// is set on the parent directory because index updates are usually atomic
// rename-over-replace, which would orphan a watch on the file itself.
// returns a stop function.
func Watch(store *Store) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	target := filepath.Clean(store.Path())
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					log.Printf("catalog: %s changed on disk, clearing cache", target)
					store.Clear()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("catalog: watch error: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
